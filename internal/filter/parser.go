package filter

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Parse builds a Filter from a query string of space-separated
// key:value terms.
//
// Supported terms:
//   - "conf:SEC" - conference; repeatable, values OR together
//   - "rating:1500-1700" - inclusive rating range
//   - "rating:>1600" / "rating:<1600" - strict rating bound
//   - "rank:1-50" - inclusive rank range
//   - "rank:<25" - strict rank bound
//   - "wins:>20" - more than 20 wins
//
// Ranges are inclusive of both ends; the > and < comparators exclude
// the bound itself. An empty query yields an empty filter.
func Parse(query string) (*Filter, error) {
	f := New()

	query = strings.TrimSpace(query)
	if query == "" {
		return f, nil
	}

	for _, term := range strings.Fields(query) {
		key, value, found := strings.Cut(term, ":")
		if !found || value == "" {
			return nil, fmt.Errorf("malformed term %q, expected key:value", term)
		}

		switch strings.ToLower(key) {
		case "conf", "conference":
			f.Conferences = append(f.Conferences, value)

		case "rating":
			min, max, strict, err := parseFloatRange(value)
			if err != nil {
				return nil, fmt.Errorf("rating term %q: %w", term, err)
			}
			// Match's bounds are inclusive; a strict comparator shifts
			// the bound to the next representable rating
			if strict && min > 0 {
				min = math.Nextafter(min, math.Inf(1))
			}
			if strict && max > 0 {
				max = math.Nextafter(max, math.Inf(-1))
			}
			f.MinRating, f.MaxRating = min, max

		case "rank":
			min, max, err := parseIntRange(value)
			if err != nil {
				return nil, fmt.Errorf("rank term %q: %w", term, err)
			}
			f.MinRank, f.MaxRank = min, max

		case "wins":
			if !strings.HasPrefix(value, ">") {
				return nil, fmt.Errorf("wins term %q, expected wins:>N", term)
			}
			n, err := strconv.Atoi(value[1:])
			if err != nil {
				return nil, fmt.Errorf("wins term %q: %w", term, err)
			}
			f.MinWins = n + 1

		default:
			return nil, fmt.Errorf("unknown filter key %q (valid: conf, rating, rank, wins)", key)
		}
	}

	return f, nil
}

var rangePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)-(\d+(?:\.\d+)?)$`)

// parseFloatRange parses "a-b", ">a", or "<b" into (min, max); strict
// reports whether a comparator set the bound, which excludes the bound
// value itself
func parseFloatRange(value string) (float64, float64, bool, error) {
	if matches := rangePattern.FindStringSubmatch(value); matches != nil {
		min, err := strconv.ParseFloat(matches[1], 64)
		if err != nil {
			return 0, 0, false, fmt.Errorf("invalid range start: %w", err)
		}
		max, err := strconv.ParseFloat(matches[2], 64)
		if err != nil {
			return 0, 0, false, fmt.Errorf("invalid range end: %w", err)
		}
		if min > max {
			return 0, 0, false, fmt.Errorf("range start %v above end %v", min, max)
		}
		return min, max, false, nil
	}

	if strings.HasPrefix(value, ">") {
		min, err := strconv.ParseFloat(value[1:], 64)
		if err != nil {
			return 0, 0, false, fmt.Errorf("invalid bound: %w", err)
		}
		return min, 0, true, nil
	}

	if strings.HasPrefix(value, "<") {
		max, err := strconv.ParseFloat(value[1:], 64)
		if err != nil {
			return 0, 0, false, fmt.Errorf("invalid bound: %w", err)
		}
		return 0, max, true, nil
	}

	return 0, 0, false, fmt.Errorf("expected a-b, >a, or <b, got %q", value)
}

// parseIntRange parses "a-b", ">a", or "<b" into (min, max), tightening
// strict comparator bounds to the nearest included integer
func parseIntRange(value string) (int, int, error) {
	min, max, strict, err := parseFloatRange(value)
	if err != nil {
		return 0, 0, err
	}
	if min != float64(int(min)) || max != float64(int(max)) {
		return 0, 0, fmt.Errorf("expected integer bounds, got %q", value)
	}
	lo, hi := int(min), int(max)
	if strict && lo > 0 {
		lo++
	}
	if strict && hi > 0 {
		hi--
	}
	return lo, hi, nil
}
