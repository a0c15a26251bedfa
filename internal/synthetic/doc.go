// Package synthetic generates the simulated tables behind the world map and
// the multi-country time series. Nothing here is observed data: coordinates
// are uniform draws and scores are coin flips. Both generators take an
// explicit *rand.Rand so reproducibility is decided by the caller's seed
// rather than by global random state and call order.
package synthetic
