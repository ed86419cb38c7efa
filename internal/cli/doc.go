// Package cli implements the command-line interface for dancing.
//
// The cli package provides the Cobra-based CLI with subcommands for
// scraping standings, seeding the tournament field, simulating single
// pools, running cross-pool trend analysis, and emitting championship
// odds. It coordinates the scraper, bracket, pool, analysis, and storage
// packages, with text and JSON output formats.
package cli
