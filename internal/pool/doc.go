// Package pool simulates bracket pools: a set of named entries with locked
// picks scored against repeated Monte-Carlo playouts of the actual
// tournament under a configurable scoring rule set.
package pool
