// Package scraper provides HTTP fetching and HTML parsing for Warren Nolan
// college basketball ELO standings.
//
// The scraper fetches the public ELO page for a season and extracts team
// standings including rank, conference, win-loss record, and ELO rating.
// It parses the standings table directly and falls back to text-line
// matching for robustness against markup changes. Parsed standings are
// cached per season year with a TTL to avoid hammering the source site.
package scraper
