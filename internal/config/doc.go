// Package config manages named pool-setup presets: how many entries a
// pool carries, how many simulations it runs, and the scoring rule set.
// Presets persist as a JSON file in the data directory.
package config
