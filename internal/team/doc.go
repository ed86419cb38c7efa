// Package team provides types and functions for managing scraped college
// basketball standings.
//
// The team package handles team representation, identification, and change
// detection through snapshot-based diffing. Each team is assigned a
// deterministic SHA1-based ID generated from its normalized name, enabling
// reliable tracking across scrapes as ratings and records move.
package team
