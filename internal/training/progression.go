package training

import "math"

const (
	// cold start prescription for an exercise with no history
	coldStartWeight = 20.0
	coldStartReps   = 6

	repCeiling      = 10
	weightIncrement = 2.5

	// every deloadWeekCycle-th week the load drops, regardless of rep progress
	deloadWeekCycle  = 6
	deloadFactor     = 0.9
	deloadMinWeight  = 2.5
	deloadRoundingTo = 2.5
)

// NextTarget computes the next prescribed weight and reps for an exercise
// from its most recent logged set and the current training week.
// Pure function: no store access, no error path.
//
// Rules, in order:
//  1. no history -> (20.0, 6)
//  2. deload week (week % 6 == 0) -> 90% of last weight rounded to the
//     nearest 2.5 (never below 2.5), always 6 reps
//  3. rep ceiling reached (last reps >= 10) -> weight + 2.5, reps reset to 6
//  4. otherwise -> same weight, one more rep
func NextTarget(last *LoggedSet, week int) Target {
	if last == nil {
		return Target{Weight: coldStartWeight, Reps: coldStartReps}
	}

	if week%deloadWeekCycle == 0 {
		deloadWeight := math.Round(last.Weight*deloadFactor/deloadRoundingTo) * deloadRoundingTo
		if deloadWeight < deloadMinWeight {
			deloadWeight = deloadMinWeight
		}
		return Target{Weight: deloadWeight, Reps: coldStartReps}
	}

	if last.Reps >= repCeiling {
		return Target{
			Weight: math.Round((last.Weight+weightIncrement)*10) / 10,
			Reps:   coldStartReps,
		}
	}

	return Target{Weight: last.Weight, Reps: last.Reps + 1}
}
