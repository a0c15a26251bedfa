// Package config provides centralized configuration management for the
// childstat report generator. It handles loading configuration from multiple
// sources, validation, and a type-safe API for the rest of the pipeline.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. config.yaml in the working directory
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern CHILDSTAT_* for namespacing:
//
//	CHILDSTAT_PATHS_DATA_DIR=data
//	CHILDSTAT_PATHS_REPORTS_DIR=reports
//	CHILDSTAT_REPORT_SEED=42
//	CHILDSTAT_LOGGING_LEVEL=info
//
// The defaults reproduce the reference report exactly: the three UNICEF CSV
// file names, seed 42 for the synthetic time series, and the 2000-2020 year
// range are all defaults rather than hard-coded values.
package config
