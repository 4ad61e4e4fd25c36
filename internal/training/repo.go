package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsekulic/liftlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNoSets = errors.New("no sets logged")

// Repo is the append-only log store for training sets, backed by the
// training_set table. Rows are only ever inserted; the serial id keeps the
// insertion order, which breaks ties between rows sharing the same date and
// set number (last insert wins).
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, set LoggedSet) (_ *LoggedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO training_set
			(date, day, exercise, set_number, reps, weight)
			VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`,
		set.Date, set.Day, set.Exercise, set.SetNumber, set.Reps, set.Weight,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert training set: %w", err)
	}

	span.SetAttributes(attribute.Int("set.id", id))

	set.ID = id
	return &set, nil
}

// LastSet returns the most recent logged set for an exercise: latest date,
// then highest set number, then highest id. ErrNoSets when none exist.
func (r *Repo) LastSet(ctx context.Context, exercise string) (_ *LoggedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.lastset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, date, day, exercise, set_number, reps, weight
			FROM training_set
			WHERE exercise = $1
			ORDER BY date DESC, set_number DESC, id DESC
			LIMIT 1;`,
		exercise,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	sets, err := r.rows2sets(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sets: %w", err)
	}

	if len(sets) == 0 {
		return nil, ErrNoSets
	}

	return &sets[0], nil
}

// History returns the full ordered history for an exercise, ascending by
// date, then set number, then id.
func (r *Repo) History(ctx context.Context, exercise string) (_ []LoggedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, date, day, exercise, set_number, reps, weight
			FROM training_set
			WHERE exercise = $1
			ORDER BY date ASC, set_number ASC, id ASC;`,
		exercise,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	sets, err := r.rows2sets(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sets: %w", err)
	}
	return sets, nil
}

// EarliestDate returns the minimum date across all logged sets,
// or nil when nothing was logged yet.
func (r *Repo) EarliestDate(ctx context.Context) (_ *time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.earliestdate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var earliest *time.Time
	if err := r.db.QueryRow(
		ctx,
		`SELECT MIN(date) FROM training_set;`,
	).Scan(&earliest); err != nil {
		return nil, fmt.Errorf("query min date: %w", err)
	}

	return earliest, nil
}

// ListDay returns all sets logged for a plan day on a given date,
// in exercise insertion order.
func (r *Repo) ListDay(ctx context.Context, day string, date time.Time) (_ []LoggedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.listday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", day))
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, date, day, exercise, set_number, reps, weight
			FROM training_set
			WHERE day = $1 AND date = $2
			ORDER BY id ASC;`,
		day, date,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	sets, err := r.rows2sets(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sets: %w", err)
	}
	return sets, nil
}

func (r *Repo) rows2sets(rows pgx.Rows) ([]LoggedSet, error) {
	var sets []LoggedSet
	for rows.Next() {
		var s LoggedSet
		if err := rows.Scan(&s.ID, &s.Date, &s.Day, &s.Exercise, &s.SetNumber, &s.Reps, &s.Weight); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}

	if sets == nil {
		sets = make([]LoggedSet, 0)
	}

	return sets, nil
}
