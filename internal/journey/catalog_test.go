package journey

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journeymap/internal/geo"
	"journeymap/internal/model"
)

func stop(id int64, code string, lat, lon float64) model.Stop {
	return model.Stop{ID: id, Title: code, RestaurantCode: code, Latitude: lat, Longitude: lon}
}

func TestCatalog_Find(t *testing.T) {
	c := New(SampleJourneys())

	j, ok := c.Find(2)
	require.True(t, ok)
	assert.Equal(t, "Delhi Heritage Walk", j.Name)

	_, ok = c.Find(99)
	assert.False(t, ok)

	first, ok := c.First()
	require.True(t, ok)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, 3, c.Len())
}

func TestCatalog_CopiesStops(t *testing.T) {
	input := []model.Journey{{ID: 1, Stops: []model.Stop{stop(1, "a", 0, 0), stop(2, "b", 0, 1)}}}
	c := New(input)

	input[0].Stops[0].Title = "changed"
	c.Journeys()[0].Stops = nil
	c.Journeys()[0].Stops[1].Title = "changed"
	found, _ := c.Find(1)
	found.Stops[0].Title = "changed"
	first, _ := c.First()
	first.Stops[1].Title = "changed"

	j, ok := c.Find(1)
	require.True(t, ok)
	require.Len(t, j.Stops, 2)
	assert.Equal(t, "a", j.Stops[0].Title)
	assert.Equal(t, "b", j.Stops[1].Title)
}

func TestCatalog_EmptyFirst(t *testing.T) {
	_, ok := New(nil).First()
	assert.False(t, ok)
}

func TestCatalog_UniqueStops(t *testing.T) {
	c := New([]model.Journey{
		{ID: 1, Stops: []model.Stop{stop(1, "A", 1, 1), stop(2, "B", 2, 2), stop(3, "A", 1, 1)}},
		{ID: 2, Stops: []model.Stop{stop(4, "C", 3, 3), stop(5, "B", 2, 2)}},
	})

	unique := c.UniqueStops()
	require.Len(t, unique, 3)
	assert.Equal(t, []int64{1, 2, 4}, []int64{unique[0].ID, unique[1].ID, unique[2].ID})

	keys := make(map[string]bool)
	for _, s := range unique {
		assert.False(t, keys[s.Key()], "duplicate key %s", s.Key())
		keys[s.Key()] = true
	}
}

func TestCatalog_VisitCountMap(t *testing.T) {
	c := New([]model.Journey{
		{ID: 1, Stops: []model.Stop{stop(1, "A", 1, 1), stop(2, "B", 2, 2), stop(3, "A", 1, 1)}},
		{ID: 2, Stops: []model.Stop{stop(4, "C", 3, 3), stop(5, "B", 2, 2)}},
	})

	counts := c.VisitCountMap()
	assert.Equal(t, map[string]int{"A": 2, "B": 2, "C": 1}, counts)

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, 2, c.VisitCount(stop(9, "A", 0, 0)))
}

func TestCatalog_SampleVisitCounts(t *testing.T) {
	c := New(SampleJourneys())
	counts := c.VisitCountMap()

	assert.Equal(t, 2, counts["DEL-HOTEL-CP"])
	assert.Equal(t, 2, counts["GOA-RESORT-CANDOLIM"])
	assert.Equal(t, 1, counts["GGN-HALDIRAM-SAHARA"])
	assert.Len(t, c.UniqueStops(), 23)
}

func TestUniqueJourneyStops(t *testing.T) {
	c := New(SampleJourneys())
	goa, ok := c.Find(3)
	require.True(t, ok)

	unique := UniqueJourneyStops(goa)
	assert.Len(t, unique, goa.StopCount()-1)
	assert.Equal(t, int64(17), unique[0].ID)
}

func TestStopKey_FallbackKeepsKeylessStopsApart(t *testing.T) {
	a := model.Stop{Title: "Cafe", Latitude: 1, Longitude: 2}
	b := model.Stop{Title: "Cafe", Latitude: 1, Longitude: 3}
	assert.NotEqual(t, a.Key(), b.Key())

	c := New([]model.Journey{{ID: 1, Stops: []model.Stop{a, b, a}}})
	assert.Len(t, c.UniqueStops(), 2)
}

func TestNearestStop(t *testing.T) {
	stops := []model.Stop{
		stop(1, "cp", 28.6315, 77.2167),
		stop(2, "gate", 28.6129, 77.2295),
		stop(3, "tomb", 28.5933, 77.2507),
	}

	t.Run("empty", func(t *testing.T) {
		_, ok := NearestStop(geo.Coordinate{}, nil)
		assert.False(t, ok)
	})

	t.Run("closest wins", func(t *testing.T) {
		s, ok := NearestStop(geo.Coordinate{Lat: 28.60, Lon: 77.245}, stops)
		require.True(t, ok)
		assert.Equal(t, int64(3), s.ID)
	})

	t.Run("ties keep the first", func(t *testing.T) {
		dup := []model.Stop{stop(7, "x", 10, 10), stop(8, "y", 10, 10)}
		s, ok := NearestStop(geo.Coordinate{Lat: 11, Lon: 11}, dup)
		require.True(t, ok)
		assert.Equal(t, int64(7), s.ID)
	})

	t.Run("no stop is strictly closer", func(t *testing.T) {
		user := geo.Coordinate{Lat: 28.64, Lon: 77.22}
		s, ok := NearestStop(user, stops)
		require.True(t, ok)
		best := DistanceMeters(user, s)
		for _, other := range stops {
			assert.GreaterOrEqual(t, DistanceMeters(user, other), best)
		}
	})
}

type failingSource struct{}

func (failingSource) Journeys() ([]model.Journey, error) {
	return nil, errors.New("boom")
}

func TestLoad(t *testing.T) {
	c, err := Load(NewStaticSource(SampleJourneys()))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = Load(failingSource{})
	assert.Error(t, err)
}

func TestSampleJourneys_Totals(t *testing.T) {
	for _, j := range SampleJourneys() {
		assert.NotEmpty(t, j.Stops, j.Name)
		assert.Equal(t, model.StopStart, j.Stops[0].Type, j.Name)
		assert.Equal(t, model.StopEnd, j.Stops[len(j.Stops)-1].Type, j.Name)
	}
	delhi := SampleJourneys()[1]
	assert.Equal(t, 7, delhi.StopCount())
	assert.Equal(t, 10+40+75+50+90+45, delhi.TotalDurationMins())
}
