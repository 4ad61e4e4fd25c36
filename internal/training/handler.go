package training

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/bsekulic/liftlog/internal/middleware"
	"github.com/bsekulic/liftlog/internal/plan"
	"github.com/bsekulic/liftlog/internal/telemetry/metrics"
	"github.com/bsekulic/liftlog/internal/telemetry/tracing"
	"github.com/bsekulic/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=training_mocks_test.go -package=training_test

type logStore interface {
	Add(ctx context.Context, set LoggedSet) (*LoggedSet, error)
	LastSet(ctx context.Context, exercise string) (*LoggedSet, error)
	History(ctx context.Context, exercise string) ([]LoggedSet, error)
	EarliestDate(ctx context.Context) (*time.Time, error)
	ListDay(ctx context.Context, day string, date time.Time) ([]LoggedSet, error)
}

type LogSetsRequest struct {
	Date string     `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Sets []SetInput `json:"sets"`
}

type LogSetsResponse struct {
	Accepted int `json:"accepted"`
	Skipped  int `json:"skipped"`
	Week     int `json:"week"`
}

type DayTargetsResponse struct {
	Day       string            `json:"day"`
	Week      int               `json:"week"`
	Exercises []string          `json:"exercises"`
	Targets   map[string]Target `json:"targets"`
}

type HistoryResponse struct {
	Exercise string      `json:"exercise"`
	Sets     []LoggedSet `json:"sets"`
}

type WeekResponse struct {
	Week int `json:"week"`
}

type Handler struct {
	service        *Service
	workoutPlan    *plan.WorkoutPlan
	metricsManager *metrics.Manager
}

func NewHandler(repo logStore, workoutPlan *plan.WorkoutPlan, metricsManager *metrics.Manager) *Handler {
	return NewHandlerWithService(NewService(repo), workoutPlan, metricsManager)
}

func NewHandlerWithService(service *Service, workoutPlan *plan.WorkoutPlan, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		workoutPlan:    workoutPlan,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	logSetsAllowedPerMin int,
) {
	r.HandleFunc("/plan", handler.HandlePlan).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/training/week", handler.HandleWeek).Methods("GET", "OPTIONS").Name("get-week")
	r.HandleFunc("/training/day/{day}/targets", handler.HandleDayTargets).Methods("GET", "OPTIONS").Name("get-day-targets")
	r.HandleFunc("/training/day/{day}/log", handler.HandleDayLog).Methods("GET", "OPTIONS").Name("get-day-log")
	r.HandleFunc("/training/exercise/{exercise}/history", handler.HandleHistory).Methods("GET", "OPTIONS").Name("get-history")
	r.HandleFunc("/training/chart/{kind}", handler.HandleChart).Methods("GET", "OPTIONS").Name("get-chart-series")

	logSetsHandler := http.Handler(http.HandlerFunc(handler.HandleLogSets))
	if rateLimiter != nil {
		logSetsHandler = middleware.RateLimit(rateLimiter, "log-sets", logSetsAllowedPerMin, handler.metricsManager)(logSetsHandler)
	}
	r.Handle("/training/day/{day}", logSetsHandler).Methods("POST", "OPTIONS").Name("log-sets")
}

// HandlePlan returns the full fixed plan structure: day names in order,
// each with its ordered exercise list. Consumed by the index page renderer.
func (handler *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.plan")
	defer span.End()

	type planDay struct {
		Day       string   `json:"day"`
		Exercises []string `json:"exercises"`
	}

	days := handler.workoutPlan.Days()
	planDays := make([]planDay, 0, len(days))
	for _, day := range days {
		exercises, _ := handler.workoutPlan.Exercises(day)
		planDays = append(planDays, planDay{Day: day, Exercises: exercises})
	}

	handler.writeJSON(w, map[string]any{"days": planDays}, http.StatusOK)
}

func (handler *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.week")
	defer span.End()

	week, err := handler.service.CurrentWeek(ctx)
	if err != nil {
		log.Errorf("failed to get current week: %s", err)
		http.Error(w, "failed to get current week", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, WeekResponse{Week: week}, http.StatusOK)
}

// HandleDayTargets returns the week number and the next prescribed
// weight/reps for every exercise of the given plan day.
func (handler *Handler) HandleDayTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.daytargets")
	defer span.End()

	day := mux.Vars(r)["day"]
	exercises, ok := handler.workoutPlan.Exercises(day)
	if !ok {
		http.Error(w, "unknown plan day", http.StatusBadRequest)
		return
	}

	week, targets, err := handler.service.DayTargets(ctx, exercises)
	if err != nil {
		log.Errorf("failed to get targets for day [%s]: %s", day, err)
		http.Error(w, "failed to get targets", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, DayTargetsResponse{
		Day:       day,
		Week:      week,
		Exercises: exercises,
		Targets:   targets,
	}, http.StatusOK)
}

// HandleLogSets appends a batch of sets for a plan day. The day must exist
// in the plan; sets for exercises outside that day's list and sets with
// non-positive reps or weight are skipped, the rest of the batch goes
// through. Nothing is written before the day check passes.
func (handler *Handler) HandleLogSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.logsets")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	day := mux.Vars(r)["day"]
	if !handler.workoutPlan.HasDay(day) {
		http.Error(w, "unknown plan day", http.StatusBadRequest)
		return
	}

	var req LogSetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log sets, unmarshal json params: %s", err)
		http.Error(w, "log sets failed", http.StatusBadRequest)
		return
	}

	date := dateOnly(time.Now())
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	// sets for exercises outside this day's plan never reach the store
	inPlan := make([]SetInput, 0, len(req.Sets))
	skippedUnknown := 0
	for _, in := range req.Sets {
		if !handler.workoutPlan.HasExercise(day, in.Exercise) {
			skippedUnknown++
			continue
		}
		inPlan = append(inPlan, in)
	}

	accepted, skippedInvalid, err := handler.service.LogSets(ctx, day, date, inPlan)
	if err != nil {
		log.Errorf("failed to log sets for day [%s]: %s", day, err)
		http.Error(w, "failed to log sets", http.StatusInternalServerError)
		return
	}
	skipped := skippedInvalid + skippedUnknown

	if handler.metricsManager != nil {
		handler.metricsManager.CounterLoggedSets.Add(float64(accepted))
		handler.metricsManager.CounterSkippedSets.Add(float64(skipped))
	}

	week, err := handler.service.CurrentWeek(ctx)
	if err != nil {
		log.Errorf("failed to get current week after logging: %s", err)
		http.Error(w, "failed to get current week", http.StatusInternalServerError)
		return
	}

	log.Debugf("day [%s] %s: %d sets logged, %d skipped", day, date.Format(time.DateOnly), accepted, skipped)
	handler.writeJSON(w, LogSetsResponse{
		Accepted: accepted,
		Skipped:  skipped,
		Week:     week,
	}, http.StatusCreated)
}

// HandleDayLog returns the sets logged for a plan day on one date
// (today unless a date query param is given), in insertion order.
func (handler *Handler) HandleDayLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.daylog")
	defer span.End()

	day := mux.Vars(r)["day"]
	if !handler.workoutPlan.HasDay(day) {
		http.Error(w, "unknown plan day", http.StatusBadRequest)
		return
	}

	date := dateOnly(time.Now())
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	sets, err := handler.service.DayLog(ctx, day, date)
	if err != nil {
		log.Errorf("failed to get day log for [%s] on %s: %s", day, date.Format(time.DateOnly), err)
		http.Error(w, "failed to get day log", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, map[string]any{
		"day":  day,
		"date": date.Format(time.DateOnly),
		"sets": sets,
	}, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.history")
	defer span.End()

	exercise := mux.Vars(r)["exercise"]
	sets, err := handler.service.History(ctx, exercise)
	if err != nil {
		log.Errorf("failed to get history for [%s]: %s", exercise, err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, HistoryResponse{Exercise: exercise, Sets: sets}, http.StatusOK)
}

// HandleChart returns a labeled series for one chart kind and exercise.
// An unknown kind is a caller error, distinct from a valid kind with no
// data, which yields an empty series.
func (handler *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.chart")
	defer span.End()

	kind := mux.Vars(r)["kind"]
	metric, err := ParseMetric(kind)
	if err != nil {
		http.Error(w, "unknown chart kind", http.StatusBadRequest)
		return
	}

	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		http.Error(w, "exercise param missing", http.StatusBadRequest)
		return
	}

	series, err := handler.service.Series(ctx, exercise, metric)
	if err != nil {
		if errors.Is(err, ErrUnknownMetric) {
			http.Error(w, "unknown chart kind", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to compute [%s] series for [%s]: %s", kind, exercise, err)
		http.Error(w, "failed to compute series", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, series, http.StatusOK)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, payload any, statusCode int) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadJson, statusCode)
}
