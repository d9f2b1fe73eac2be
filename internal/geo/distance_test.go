package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{90.4125, 23.8103},   // Dhaka
		{-0.1276, 51.5072},   // London
		{179.99, -89.99},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p, p))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := [2]float64{90.4125, 23.8103}
	b := [2]float64{91.8687, 24.8949}
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistance_KnownPairs(t *testing.T) {
	// Dhaka to Chattogram is roughly 215 km great-circle
	dhaka := [2]float64{90.4125, 23.8103}
	chattogram := [2]float64{91.8123, 22.3569}
	d := Distance(dhaka, chattogram)
	assert.InDelta(t, 215, d, 10)

	// One degree of latitude on the prime meridian is ~111.19 km
	d = Distance([2]float64{0, 0}, [2]float64{0, 1})
	assert.InDelta(t, 111.19, d, 0.1)
}

func TestDistance_OutOfRangeInputStillNumeric(t *testing.T) {
	// Total function: garbage coordinates produce a number, not a panic
	d := Distance([2]float64{500, -300}, [2]float64{-500, 300})
	assert.False(t, d != d, "distance must not be NaN")
	assert.GreaterOrEqual(t, d, 0.0)
}
