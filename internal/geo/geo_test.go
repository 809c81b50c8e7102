package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKm(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		p := Coordinate{Lat: 28.6315, Lon: 77.2167}
		assert.Equal(t, 0.0, HaversineKm(p, p))
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := HaversineKm(Coordinate{Lat: 0, Lon: 0}, Coordinate{Lat: 1, Lon: 0})
		assert.InDelta(t, 111.195, d, 0.01)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := Coordinate{Lat: 28.6129, Lon: 77.2295}
		b := Coordinate{Lat: 28.5933, Lon: 77.2507}
		assert.InDelta(t, HaversineKm(a, b), HaversineKm(b, a), 1e-12)
	})

	t.Run("delhi to goa", func(t *testing.T) {
		d := HaversineKm(Coordinate{Lat: 28.6315, Lon: 77.2167}, Coordinate{Lat: 15.5189, Lon: 73.7606})
		assert.InDelta(t, 1500, d, 50)
	})
}

func TestHaversineMeters(t *testing.T) {
	a := Coordinate{Lat: 15.5556, Lon: 73.7519}
	b := Coordinate{Lat: 15.5572, Lon: 73.7511}
	assert.InDelta(t, HaversineKm(a, b)*1000, HaversineMeters(a, b), 1e-9)
}

func TestBoundsOf(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, ok := BoundsOf(nil)
		assert.False(t, ok)
	})

	t.Run("single point has zero area", func(t *testing.T) {
		p := Coordinate{Lat: 15.5189, Lon: 73.7606}
		b, ok := BoundsOf([]Coordinate{p})
		require.True(t, ok)
		assert.Equal(t, p, b.SouthWest)
		assert.Equal(t, p, b.NorthEast)
		latSpan, lonSpan := b.Span()
		assert.Zero(t, latSpan)
		assert.Zero(t, lonSpan)
	})

	t.Run("contains every point", func(t *testing.T) {
		pts := []Coordinate{
			{Lat: 28.6315, Lon: 77.2167},
			{Lat: 28.6129, Lon: 77.2295},
			{Lat: 28.5933, Lon: 77.2507},
			{Lat: 28.6562, Lon: 77.2410},
		}
		b, ok := BoundsOf(pts)
		require.True(t, ok)
		assert.Equal(t, Coordinate{Lat: 28.5933, Lon: 77.2167}, b.SouthWest)
		assert.Equal(t, Coordinate{Lat: 28.6562, Lon: 77.2507}, b.NorthEast)
		for _, p := range pts {
			assert.True(t, b.Contains(p))
		}
		assert.InDelta(t, 28.62475, b.Center().Lat, 1e-9)
	})
}
