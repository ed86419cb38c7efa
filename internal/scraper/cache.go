package scraper

import (
	"time"

	"github.com/tefirman/dancing/internal/team"
)

// Cache manages parsed standings with TTL, keyed by season year
type Cache struct {
	Standings map[int][]*team.Team `json:"standings"`
	CachedAt  map[int]time.Time    `json:"cached_at"`
	TTL       time.Duration        `json:"-"` // Cache TTL (not serialized)
}

// NewCache creates a new standings cache with default 6-hour TTL
func NewCache() *Cache {
	return &Cache{
		Standings: make(map[int][]*team.Team),
		CachedAt:  make(map[int]time.Time),
		TTL:       6 * time.Hour,
	}
}

// Get retrieves standings from cache if not expired.
// Returns nil if not found or expired.
func (c *Cache) Get(year int) []*team.Team {
	teams, exists := c.Standings[year]
	if !exists {
		return nil
	}

	cachedTime, hasTime := c.CachedAt[year]
	if !hasTime || time.Since(cachedTime) > c.TTL {
		// Expired, remove from cache
		delete(c.Standings, year)
		delete(c.CachedAt, year)
		return nil
	}

	return teams
}

// Set stores standings in cache
func (c *Cache) Set(year int, teams []*team.Team) {
	c.Standings[year] = teams
	c.CachedAt[year] = time.Now()
}

// CleanExpired removes expired entries from cache
func (c *Cache) CleanExpired() int {
	removed := 0
	now := time.Now()

	for year, cachedTime := range c.CachedAt {
		if now.Sub(cachedTime) > c.TTL {
			delete(c.Standings, year)
			delete(c.CachedAt, year)
			removed++
		}
	}

	return removed
}

// Size returns the number of cached seasons
func (c *Cache) Size() int {
	return len(c.Standings)
}
