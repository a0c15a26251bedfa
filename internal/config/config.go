package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" validate:"required"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// ReportConfig contains the report generation parameters
type ReportConfig struct {
	DeprivationFile string  `yaml:"deprivation_file" envconfig:"DEPRIVATION_FILE" validate:"required"`
	MaternityFile   string  `yaml:"maternity_file" envconfig:"MATERNITY_FILE" validate:"required"`
	MetadataFile    string  `yaml:"metadata_file" envconfig:"METADATA_FILE" validate:"required"`
	Seed            int64   `yaml:"seed" envconfig:"SEED"`
	FlipProbability float64 `yaml:"flip_probability" envconfig:"FLIP_PROBABILITY" validate:"gte=0,lte=1"`
	YearStart       int     `yaml:"year_start" envconfig:"YEAR_START" validate:"gt=0"`
	YearEnd         int     `yaml:"year_end" envconfig:"YEAR_END" validate:"gtefield=YearStart"`
}

// Default returns the configuration that reproduces the reference report:
// the three UNICEF file names, seed 42 and the 2000-2020 synthetic year range.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/childstat.log",
		},
		Paths: PathsConfig{
			DataDir:    "data",
			ReportsDir: "reports",
			LogsDir:    "logs",
		},
		Report: ReportConfig{
			DeprivationFile: "unicef_indicator_1.csv",
			MaternityFile:   "unicef_indicator_2.csv",
			MetadataFile:    "unicef_metadata.csv",
			Seed:            42,
			FlipProbability: 0.2,
			YearStart:       2000,
			YearEnd:         2020,
		},
	}
}

// Load loads configuration from defaults, an optional config file and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	cfg := Default()

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Environment variables override both defaults and file values
	if err := envconfig.Process("CHILDSTAT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against the struct validation rules
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// DeprivationPath returns the full path to the deprivation indicator CSV
func (c *Config) DeprivationPath() string {
	return filepath.Join(c.Paths.DataDir, c.Report.DeprivationFile)
}

// MaternityPath returns the full path to the maternity leave indicator CSV
func (c *Config) MaternityPath() string {
	return filepath.Join(c.Paths.DataDir, c.Report.MaternityFile)
}

// MetadataPath returns the full path to the country metadata CSV
func (c *Config) MetadataPath() string {
	return filepath.Join(c.Paths.DataDir, c.Report.MetadataFile)
}

// EnsureDirectories creates the output directories if they do not exist
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.ReportsDir, c.Paths.LogsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// getConfigFilePath returns the config file location, overridable via env
func getConfigFilePath() string {
	if path := os.Getenv("CHILDSTAT_CONFIG_FILE"); path != "" {
		return path
	}
	return "config.yaml"
}
