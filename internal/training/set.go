package training

import (
	"errors"
	"time"
)

// LoggedSet is one performed set of an exercise. Records are append-only,
// never updated or deleted.
type LoggedSet struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	Day       string    `json:"day"`
	Exercise  string    `json:"exercise"`
	SetNumber int       `json:"setNumber"`
	Reps      int       `json:"reps"`
	Weight    float64   `json:"weight"`
}

var errInvalidSet = errors.New("reps and weight must be positive")

func (s LoggedSet) Validate() error {
	if s.Reps <= 0 || s.Weight <= 0 {
		return errInvalidSet
	}
	return nil
}

// Target is the next prescribed weight and rep count for an exercise.
// It is derived on each request and never persisted.
type Target struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}
