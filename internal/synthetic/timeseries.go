package synthetic

import (
	"math/rand"
)

// TimeSeriesPoint is one simulated yearly observation for a country
type TimeSeriesPoint struct {
	Country          string
	Year             int
	DeprivationScore int // {0, 1}
}

// TimeSeriesParams controls the simulated series
type TimeSeriesParams struct {
	YearStart       int
	YearEnd         int // inclusive
	FlipProbability float64
}

// GenerateTimeSeries produces a simulated score series per country. Each
// country draws one Bernoulli(0.5) base value, then for every year in
// ascending order a Bernoulli(FlipProbability) flag: the year emits 1-base
// when the flag fires, base otherwise.
//
// Output is grouped by country in input order, years ascending within each
// country. Consumers that slice the first N rows rely on that ordering.
// With the same seeded source and the same country list the output is
// identical draw for draw.
func GenerateTimeSeries(rng *rand.Rand, countries []string, params TimeSeriesParams) []TimeSeriesPoint {
	years := params.YearEnd - params.YearStart + 1
	if years < 0 {
		years = 0
	}
	points := make([]TimeSeriesPoint, 0, len(countries)*years)
	for _, country := range countries {
		base := rng.Intn(2)
		for year := params.YearStart; year <= params.YearEnd; year++ {
			score := base
			if rng.Float64() < params.FlipProbability {
				score = 1 - base
			}
			points = append(points, TimeSeriesPoint{
				Country:          country,
				Year:             year,
				DeprivationScore: score,
			})
		}
	}
	return points
}

// Countries returns the distinct countries of a series in first-encountered
// order, capped at max (0 means no cap).
func Countries(points []TimeSeriesPoint, max int) []string {
	seen := make(map[string]bool)
	var countries []string
	for _, p := range points {
		if seen[p.Country] {
			continue
		}
		if max > 0 && len(countries) == max {
			break
		}
		seen[p.Country] = true
		countries = append(countries, p.Country)
	}
	return countries
}
