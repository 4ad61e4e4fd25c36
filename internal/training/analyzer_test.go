package training_test

import (
	"testing"
	"time"

	"github.com/bsekulic/liftlog/internal/training"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseMetric(t *testing.T) {
	for _, kind := range []string{"top_weight", "volume", "e1rm"} {
		metric, err := training.ParseMetric(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, string(metric))
	}

	_, err := training.ParseMetric("max_reps")
	require.ErrorIs(t, err, training.ErrUnknownMetric)
	_, err = training.ParseMetric("")
	require.ErrorIs(t, err, training.ErrUnknownMetric)
}

func TestEpley1RM(t *testing.T) {
	assert.InDelta(t, 63.333, training.Epley1RM(50, 8), 0.001)
	assert.InDelta(t, 60, training.Epley1RM(45, 10), 0.001)
	// a single rep estimates close to the lifted weight
	assert.InDelta(t, 103.333, training.Epley1RM(100, 1), 0.001)
}

func TestComputeSeries_UnknownMetric(t *testing.T) {
	_, err := training.ComputeSeries([]training.LoggedSet{}, training.Metric("bogus"))
	require.ErrorIs(t, err, training.ErrUnknownMetric)
}

func TestComputeSeries_EmptyHistory(t *testing.T) {
	series, err := training.ComputeSeries(nil, training.MetricVolume)
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestComputeSeries(t *testing.T) {
	day1 := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 4)
	day3 := day1.AddDate(0, 0, 11)

	history := []training.LoggedSet{
		{Date: day1, Exercise: "Weighted Dips", SetNumber: 1, Reps: 8, Weight: 50},
		{Date: day1, Exercise: "Weighted Dips", SetNumber: 2, Reps: 10, Weight: 45},
		{Date: day2, Exercise: "Weighted Dips", SetNumber: 1, Reps: 6, Weight: 55},
		{Date: day3, Exercise: "Weighted Dips", SetNumber: 1, Reps: 9, Weight: 55},
		{Date: day3, Exercise: "Weighted Dips", SetNumber: 2, Reps: 7, Weight: 57.5},
	}

	t.Run("top weight", func(t *testing.T) {
		series, err := training.ComputeSeries(history, training.MetricTopWeight)
		require.NoError(t, err)
		require.Len(t, series, 3)
		assert.Equal(t, []training.SeriesPoint{
			{Date: day1, Value: 50},
			{Date: day2, Value: 55},
			{Date: day3, Value: 57.5},
		}, series)
	})

	t.Run("volume", func(t *testing.T) {
		series, err := training.ComputeSeries(history, training.MetricVolume)
		require.NoError(t, err)
		require.Len(t, series, 3)
		assert.Equal(t, day1, series[0].Date)
		assert.Equal(t, 850.0, series[0].Value) // 8*50 + 10*45
		assert.Equal(t, 330.0, series[1].Value)
		assert.Equal(t, 897.5, series[2].Value) // 9*55 + 7*57.5
	})

	t.Run("estimated 1RM", func(t *testing.T) {
		series, err := training.ComputeSeries(history, training.MetricEstimated1RM)
		require.NoError(t, err)
		require.Len(t, series, 3)
		// set 1 (50 x 8) beats set 2 (45 x 10): 63.33 vs 60
		assert.InDelta(t, 63.333, series[0].Value, 0.001)
		assert.InDelta(t, 66, series[1].Value, 0.001)
		assert.InDelta(t, 71.5, series[2].Value, 0.001) // 55 x 9 beats 57.5 x 7
	})
}

func TestComputeSeries_OnePointPerDate(t *testing.T) {
	gofakeit.Seed(42)

	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	var history []training.LoggedSet
	for session := 0; session < 20; session++ {
		date := start.AddDate(0, 0, session*3)
		for setNumber := 1; setNumber <= 3; setNumber++ {
			history = append(history, training.LoggedSet{
				Date:      date,
				Exercise:  "Romanian Deadlift",
				SetNumber: setNumber,
				Reps:      gofakeit.Number(5, 12),
				Weight:    float64(gofakeit.Number(20, 60)),
			})
		}
	}

	for _, metric := range []training.Metric{
		training.MetricTopWeight, training.MetricVolume, training.MetricEstimated1RM,
	} {
		series, err := training.ComputeSeries(history, metric)
		require.NoError(t, err)
		require.Len(t, series, 20, "metric %s", metric)
		for i := 1; i < len(series); i++ {
			assert.True(t,
				series[i-1].Date.Before(series[i].Date),
				"metric %s: dates must ascend", metric,
			)
		}
	}
}
