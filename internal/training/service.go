package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsekulic/liftlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// SetInput is one submitted set within a batch logging request.
type SetInput struct {
	Exercise  string  `json:"exercise"`
	SetNumber int     `json:"setNumber"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
}

// ChartSeries is the renderer-facing payload for one chart:
// labeled, ordered per-session values for a single exercise.
type ChartSeries struct {
	Exercise string        `json:"exercise"`
	Kind     Metric        `json:"kind"`
	Title    string        `json:"title"`
	YLabel   string        `json:"yLabel"`
	Points   []SeriesPoint `json:"points"`
}

type Service struct {
	repo logStore
	now  func() time.Time
}

func NewService(repo logStore) *Service {
	return NewServiceWithClock(repo, time.Now)
}

// NewServiceWithClock injects the "today" reference used for week number
// calculation, so callers needing reproducibility can pass a fixed clock.
func NewServiceWithClock(repo logStore, now func() time.Time) *Service {
	return &Service{
		repo: repo,
		now:  now,
	}
}

// CurrentWeek derives the training week from the earliest logged date
// across all exercises. Week 1 when nothing was logged yet.
func (s *Service) CurrentWeek(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.currentweek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	earliest, err := s.repo.EarliestDate(ctx)
	if err != nil {
		return 0, fmt.Errorf("earliest logged date: %w", err)
	}

	week := WeekNumber(earliest, s.now())
	span.SetAttributes(attribute.Int("week", week))
	return week, nil
}

// NextTargetFor computes the next prescription for one exercise.
// A missing history is not an error, it yields the cold start target;
// a failing store is.
func (s *Service) NextTargetFor(ctx context.Context, exercise string, week int) (_ Target, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.nexttarget")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))

	last, err := s.repo.LastSet(ctx, exercise)
	if err != nil && !errors.Is(err, ErrNoSets) {
		return Target{}, fmt.Errorf("last set for %s: %w", exercise, err)
	}

	// last stays nil on ErrNoSets, which is the cold start case
	return NextTarget(last, week), nil
}

// DayTargets computes the current week and the recommendation map for a
// day's exercise list, in the given order.
func (s *Service) DayTargets(ctx context.Context, exercises []string) (week int, _ map[string]Target, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.daytargets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	week, err = s.CurrentWeek(ctx)
	if err != nil {
		return 0, nil, err
	}

	targets := make(map[string]Target, len(exercises))
	for _, exercise := range exercises {
		target, err := s.NextTargetFor(ctx, exercise, week)
		if err != nil {
			return 0, nil, err
		}
		targets[exercise] = target
	}

	return week, targets, nil
}

// LogSets appends a batch of sets for one plan day and date. Each set is
// validated independently: non-positive reps or weight skip that set only,
// the rest of the batch continues. Store failures abort and surface.
func (s *Service) LogSets(
	ctx context.Context,
	day string,
	date time.Time,
	inputs []SetInput,
) (accepted, skipped int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.logsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", day))
	span.SetAttributes(attribute.Int("submitted", len(inputs)))

	for _, in := range inputs {
		set := LoggedSet{
			Date:      date,
			Day:       day,
			Exercise:  in.Exercise,
			SetNumber: in.SetNumber,
			Reps:      in.Reps,
			Weight:    in.Weight,
		}
		if err := set.Validate(); err != nil {
			skipped++
			continue
		}
		if _, err = s.repo.Add(ctx, set); err != nil {
			return accepted, skipped, fmt.Errorf("add set: %w", err)
		}
		accepted++
	}

	span.SetAttributes(attribute.Int("accepted", accepted))
	span.SetAttributes(attribute.Int("skipped", skipped))
	return accepted, skipped, nil
}

// DayLog returns all sets logged for a plan day on one date.
func (s *Service) DayLog(ctx context.Context, day string, date time.Time) (_ []LoggedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.daylog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", day))

	sets, err := s.repo.ListDay(ctx, day, date)
	if err != nil {
		return nil, fmt.Errorf("list day %s on %s: %w", day, date.Format(time.DateOnly), err)
	}
	return sets, nil
}

// History returns the full ordered history for an exercise.
func (s *Service) History(ctx context.Context, exercise string) (_ []LoggedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))

	sets, err := s.repo.History(ctx, exercise)
	if err != nil {
		return nil, fmt.Errorf("history for %s: %w", exercise, err)
	}
	return sets, nil
}

// Series computes a labeled chart series for an exercise and metric.
// Empty history yields an empty Points slice; the renderer shows its
// "no data" placeholder for that.
func (s *Service) Series(ctx context.Context, exercise string, metric Metric) (_ *ChartSeries, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.series")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))
	span.SetAttributes(attribute.String("metric", string(metric)))

	history, err := s.repo.History(ctx, exercise)
	if err != nil {
		return nil, fmt.Errorf("history for %s: %w", exercise, err)
	}

	points, err := ComputeSeries(history, metric)
	if err != nil {
		return nil, err
	}

	return &ChartSeries{
		Exercise: exercise,
		Kind:     metric,
		Title:    metric.Title(exercise),
		YLabel:   metric.YLabel(),
		Points:   points,
	}, nil
}
