package training_test

import (
	"testing"

	"github.com/bsekulic/liftlog/internal/training"

	"github.com/stretchr/testify/assert"
)

func TestNextTarget_ColdStart(t *testing.T) {
	for week := 1; week <= 12; week++ {
		target := training.NextTarget(nil, week)
		assert.Equal(t, 20.0, target.Weight, "week %d", week)
		assert.Equal(t, 6, target.Reps, "week %d", week)
	}
}

func TestNextTarget_RepProgression(t *testing.T) {
	testCases := []struct {
		name       string
		lastReps   int
		lastWeight float64
		week       int
		wantWeight float64
		wantReps   int
	}{
		{
			name:       "below ceiling adds one rep",
			lastReps:   6, lastWeight: 60,
			week:       3,
			wantWeight: 60, wantReps: 7,
		},
		{
			name:       "one below ceiling adds one rep",
			lastReps:   9, lastWeight: 42.5,
			week:       7,
			wantWeight: 42.5, wantReps: 10,
		},
		{
			name:       "at ceiling bumps weight and resets reps",
			lastReps:   10, lastWeight: 60,
			week:       3,
			wantWeight: 62.5, wantReps: 6,
		},
		{
			name:       "above ceiling bumps weight and resets reps",
			lastReps:   12, lastWeight: 100,
			week:       5,
			wantWeight: 102.5, wantReps: 6,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			last := &training.LoggedSet{Reps: tc.lastReps, Weight: tc.lastWeight}
			target := training.NextTarget(last, tc.week)
			assert.Equal(t, tc.wantWeight, target.Weight)
			assert.Equal(t, tc.wantReps, target.Reps)
		})
	}
}

func TestNextTarget_DeloadWeek(t *testing.T) {
	testCases := []struct {
		name       string
		lastReps   int
		lastWeight float64
		week       int
		wantWeight float64
	}{
		{
			name:     "deload rounds to nearest 2.5",
			lastReps: 8, lastWeight: 100,
			week:       12,
			wantWeight: 90, // 100 * 0.9 = 90, already on the raster
		},
		{
			name:     "deload rounds 54 down to 47.5",
			lastReps: 5, lastWeight: 54,
			week:       6,
			wantWeight: 47.5, // 48.6 / 2.5 = 19.44 -> 19 * 2.5
		},
		{
			name:     "deload ignores rep ceiling",
			lastReps: 12, lastWeight: 50,
			week:       18,
			wantWeight: 45,
		},
		{
			name:     "deload never drops below 2.5",
			lastReps: 6, lastWeight: 2.5,
			week:       6,
			wantWeight: 2.5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			last := &training.LoggedSet{Reps: tc.lastReps, Weight: tc.lastWeight}
			target := training.NextTarget(last, tc.week)
			assert.Equal(t, tc.wantWeight, target.Weight)
			// deload always prescribes exactly 6 reps
			assert.Equal(t, 6, target.Reps)
		})
	}
}

func TestNextTarget_DeloadEverySixthWeek(t *testing.T) {
	last := &training.LoggedSet{Reps: 10, Weight: 80}

	for week := 1; week <= 24; week++ {
		target := training.NextTarget(last, week)
		if week%6 == 0 {
			assert.Equal(t, 72.5, target.Weight, "week %d", week) // 72 / 2.5 = 28.8 -> 29 * 2.5
			assert.Equal(t, 6, target.Reps, "week %d", week)
		} else {
			assert.Equal(t, 82.5, target.Weight, "week %d", week)
			assert.Equal(t, 6, target.Reps, "week %d", week)
		}
	}
}
