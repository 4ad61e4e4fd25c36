package plan

// WorkoutPlan is the fixed weekly split. It is built once at process start
// and never mutated afterwards; day order and exercise order are stable.
type WorkoutPlan struct {
	days      []string
	exercises map[string][]string
}

const (
	DayPush          = "Push"
	DayPull          = "Pull"
	DayLegsShoulders = "Legs & Shoulders"
)

func New() *WorkoutPlan {
	return &WorkoutPlan{
		days: []string{DayPush, DayPull, DayLegsShoulders},
		exercises: map[string][]string{
			DayPush: {
				"Incline Dumbbell Press",
				"Flat Press (Barbell or Machine)",
				"Weighted Dips",
				"Incline Fly (DB or Machine)",
				"EZ Bar Skull Crushers",
				"Overhead Rope Extension",
				"Tricep Pressdowns",
			},
			DayPull: {
				"Pull-Ups + Negatives",
				"Chest-Supported T-Bar Row",
				"Lat Pulldown (Neutral/Underhand)",
				"Seated Cable Row",
				"Face Pulls",
				"Incline Dumbbell Curl",
				"EZ Bar Preacher Curl",
				"Hammer Curls",
			},
			DayLegsShoulders: {
				"Pendulum or Hack Squat",
				"Romanian Deadlift",
				"Leg Extension",
				"Seated/Lying Leg Curl",
				"Standing Calf Raise",
				"Seated Dumbbell Overhead Press",
				"Cable Lateral Raise",
				"Rear Delt Fly",
				"Wide-Grip Upright Row",
			},
		},
	}
}

// Days returns the plan day names in their fixed order.
func (p *WorkoutPlan) Days() []string {
	days := make([]string, len(p.days))
	copy(days, p.days)
	return days
}

// Exercises returns the ordered exercise list for a day,
// and false if the day is not part of the plan.
func (p *WorkoutPlan) Exercises(day string) ([]string, bool) {
	exercises, ok := p.exercises[day]
	if !ok {
		return nil, false
	}
	out := make([]string, len(exercises))
	copy(out, exercises)
	return out, true
}

func (p *WorkoutPlan) HasDay(day string) bool {
	_, ok := p.exercises[day]
	return ok
}

func (p *WorkoutPlan) HasExercise(day, exercise string) bool {
	for _, e := range p.exercises[day] {
		if e == exercise {
			return true
		}
	}
	return false
}

// AllExercises returns every exercise of the plan, deduplicated,
// in day order then exercise order.
func (p *WorkoutPlan) AllExercises() []string {
	seen := make(map[string]bool)
	var all []string
	for _, day := range p.days {
		for _, e := range p.exercises[day] {
			if seen[e] {
				continue
			}
			seen[e] = true
			all = append(all, e)
		}
	}
	return all
}
