package synthetic

import (
	"math/rand"
)

// MapPoint is a simulated world-map observation. Coordinates and score are
// random draws with no relation to real geography or to the deprivation
// score observed for the country; the resulting chart is illustrative only.
type MapPoint struct {
	Country          string
	Lon              float64 // [-180, 180)
	Lat              float64 // [-90, 90)
	DeprivationScore int     // {0, 1}
}

// GenerateMapPoints produces one MapPoint per country in input order. The
// random source is passed in by the caller; reproducibility is the caller's
// choice of seed.
func GenerateMapPoints(rng *rand.Rand, countries []string) []MapPoint {
	points := make([]MapPoint, 0, len(countries))
	for _, country := range countries {
		points = append(points, MapPoint{
			Country:          country,
			Lon:              rng.Float64()*360 - 180,
			Lat:              rng.Float64()*180 - 90,
			DeprivationScore: rng.Intn(2),
		})
	}
	return points
}
