// Package analysis aggregates trends across many simulated bracket pools:
// how many upsets winning brackets carry per round, which underdogs they
// ride deep, and which champions they pick.
package analysis
