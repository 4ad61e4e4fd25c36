package training

import (
	"errors"
	"fmt"
	"time"
)

// Metric selects the per-session value computed for chart series.
type Metric string

const (
	MetricTopWeight    Metric = "top_weight"
	MetricVolume       Metric = "volume"
	MetricEstimated1RM Metric = "e1rm"
)

var ErrUnknownMetric = errors.New("unknown chart metric")

func ParseMetric(kind string) (Metric, error) {
	switch Metric(kind) {
	case MetricTopWeight, MetricVolume, MetricEstimated1RM:
		return Metric(kind), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMetric, kind)
	}
}

func (m Metric) Title(exercise string) string {
	switch m {
	case MetricTopWeight:
		return fmt.Sprintf("%s — Top Set Weight Over Time", exercise)
	case MetricVolume:
		return fmt.Sprintf("%s — Session Volume", exercise)
	case MetricEstimated1RM:
		return fmt.Sprintf("%s — Estimated 1RM (Epley)", exercise)
	default:
		return exercise
	}
}

func (m Metric) YLabel() string {
	switch m {
	case MetricTopWeight:
		return "Weight"
	case MetricVolume:
		return "Volume"
	case MetricEstimated1RM:
		return "Estimated 1RM"
	default:
		return ""
	}
}

// SeriesPoint is one charted value: a session date and the metric value
// computed over all sets of that session.
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Epley1RM estimates the one-rep-max from a set: weight * (1 + reps/30).
func Epley1RM(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/30.0)
}

// ComputeSeries groups an exercise's history into sessions (all sets on one
// date) and computes one metric value per session, in ascending date order.
// History is expected ordered ascending by date, as returned by the store.
// Empty history yields an empty series, not an error.
func ComputeSeries(history []LoggedSet, metric Metric) ([]SeriesPoint, error) {
	switch metric {
	case MetricTopWeight, MetricVolume, MetricEstimated1RM:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
	}

	sessions := make(map[time.Time][]LoggedSet)
	var dates []time.Time
	for _, set := range history {
		day := dateOnly(set.Date)
		if _, seen := sessions[day]; !seen {
			dates = append(dates, day)
		}
		sessions[day] = append(sessions[day], set)
	}

	series := make([]SeriesPoint, 0, len(dates))
	for _, day := range dates {
		var value float64
		for _, set := range sessions[day] {
			switch metric {
			case MetricTopWeight:
				if set.Weight > value {
					value = set.Weight
				}
			case MetricVolume:
				value += set.Weight * float64(set.Reps)
			case MetricEstimated1RM:
				if oneRM := Epley1RM(set.Weight, set.Reps); oneRM > value {
					value = oneRM
				}
			}
		}
		series = append(series, SeriesPoint{Date: day, Value: value})
	}

	return series, nil
}
