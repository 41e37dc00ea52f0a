package utils

import (
	"math"
	"testing"
)

func TestCalculateHaversineDistance(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tolerance              float64
	}{
		{"same point", -7.9546, 112.6145, -7.9546, 112.6145, 0, 0.001},
		{"about 111km per degree latitude", 0, 0, 1, 0, 111195, 200},
		{"short hop", -6.2000, 106.8167, -6.2010, 106.8167, 111.2, 1},
	}
	for _, c := range cases {
		got := CalculateHaversineDistance(c.lat1, c.lon1, c.lat2, c.lon2)
		if math.Abs(got-c.want) > c.tolerance {
			t.Errorf("%s: CalculateHaversineDistance() = %f, want %f ± %f", c.name, got, c.want, c.tolerance)
		}
	}
}
