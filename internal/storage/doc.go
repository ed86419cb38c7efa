// Package storage persists standings snapshots and analysis reports as
// JSON files under a data directory. Snapshots are keyed by season year
// and loading a missing snapshot yields an empty one, so first runs need
// no setup.
package storage
