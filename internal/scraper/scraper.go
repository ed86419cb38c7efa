package scraper

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tefirman/dancing/internal/team"
)

const (
	BaseURL   = "https://www.warrennolan.com"
	UserAgent = "dancing-cli/1.0 (github.com/tefirman/dancing)"
	Timeout   = 30 * time.Second
)

// Scraper handles fetching and parsing Warren Nolan ELO standings
type Scraper struct {
	client  *http.Client
	baseURL string
	cache   *Cache
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: BaseURL,
		cache:   NewCache(),
	}
}

// StandingsURL returns the ELO standings URL for a season year
func (s *Scraper) StandingsURL(year int) string {
	return fmt.Sprintf("%s/basketball/%d/elo", s.baseURL, year)
}

// FetchStandings fetches and parses the ELO standings for a season year.
// Parsed standings are cached per year; a fresh cached copy is returned
// without refetching.
func (s *Scraper) FetchStandings(year int) ([]*team.Team, error) {
	if cached := s.cache.Get(year); cached != nil {
		return cached, nil
	}

	url := s.StandingsURL(year)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	teams, err := s.parseStandings(resp.Body)
	if err != nil {
		return nil, err
	}

	s.cache.Set(year, teams)
	return teams, nil
}

// parseStandings extracts team standings from HTML
func (s *Scraper) parseStandings(r io.Reader) ([]*team.Team, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	teams := make([]*team.Team, 0)

	// Strategy 1: parse standings table rows.
	// Expected cell order: rank, team, conference, record, ELO.
	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 5 {
			return
		}

		rank, err := strconv.Atoi(strings.TrimSpace(cells.Eq(0).Text()))
		if err != nil {
			// Header or malformed row
			return
		}

		name := cleanTeamName(cells.Eq(1).Text())
		conference := strings.TrimSpace(cells.Eq(2).Text())
		record := strings.TrimSpace(cells.Eq(3).Text())
		rating, err := strconv.ParseFloat(strings.TrimSpace(cells.Eq(4).Text()), 64)
		if err != nil {
			return
		}

		wins, losses, err := team.ParseRecord(record)
		if err != nil {
			return
		}

		if name == "" || conference == "" {
			return
		}

		teams = append(teams, team.New(name, conference, rating, wins, losses, rank))
	})

	// Strategy 2: fall back to text-line matching when no table parsed.
	// Matches lines like "1  UConn  Big East  28-3  1744.52"
	if len(teams) == 0 {
		linePattern := regexp.MustCompile(`^(\d{1,3})\s{2,}(.+?)\s{2,}(.+?)\s{2,}(\d+-\d+)\s{2,}(\d+(?:\.\d+)?)$`)

		lines := strings.Split(doc.Text(), "\n")
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			matches := linePattern.FindStringSubmatch(line)
			if matches == nil {
				continue
			}

			rank, err := strconv.Atoi(matches[1])
			if err != nil {
				continue
			}
			rating, err := strconv.ParseFloat(matches[5], 64)
			if err != nil {
				continue
			}
			wins, losses, err := team.ParseRecord(matches[4])
			if err != nil {
				continue
			}

			name := cleanTeamName(matches[2])
			conference := strings.TrimSpace(matches[3])

			teams = append(teams, team.New(name, conference, rating, wins, losses, rank))
		}
	}

	// Deduplicate teams by ID
	seen := make(map[string]bool)
	unique := make([]*team.Team, 0, len(teams))
	for _, tm := range teams {
		if !seen[tm.ID] {
			seen[tm.ID] = true
			unique = append(unique, tm)
		}
	}

	return unique, nil
}

// cleanTeamName strips annotations Warren Nolan embeds in team cells,
// e.g. a trailing "(1)" rank marker or a leading seed number
func cleanTeamName(name string) string {
	name = strings.TrimSpace(name)

	parenPattern := regexp.MustCompile(`\s*\(\d+\)\s*$`)
	name = parenPattern.ReplaceAllString(name, "")

	seedPattern := regexp.MustCompile(`^\d{1,2}\s+`)
	name = seedPattern.ReplaceAllString(name, "")

	return strings.TrimSpace(name)
}
