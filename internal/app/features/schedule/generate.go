// internal/app/features/schedule/generate.go
package schedule

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	uierrors "github.com/dalemusser/mentorhub/internal/app/features/errors"
	"github.com/dalemusser/mentorhub/internal/app/system/allocator"
	"github.com/dalemusser/mentorhub/internal/app/system/metrics"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/dalemusser/mentorhub/internal/app/system/txn"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

type generateResponse struct {
	Run            models.ScheduleRun         `json:"run"`
	Totals         allocator.Totals           `json:"totals"`
	Shortfall      []allocator.ShortfallEntry `json:"shortfall"`
	CrossConflicts []allocator.CrossConflict  `json:"cross_conflicts"`
	Utilization    []models.MentorUtilization `json:"utilization"`
}

// seedFor picks the run seed: ?seed= wins, then the configured seed, then
// the clock.
func (h *Handler) seedFor(r *http.Request) (int64, error) {
	if raw := strings.TrimSpace(query.Get(r, "seed")); raw != "" {
		return strconv.ParseInt(raw, 10, 64)
	}
	if h.Seed != 0 {
		return h.Seed, nil
	}
	return h.now().UnixNano(), nil
}

// Generate handles POST /schedule/generate[?seed=].
//
// It loads both rosters, runs the allocator in memory and, only when that
// succeeds, replaces the stored assignments and groups with the new run in
// one transaction where the deployment allows it.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	seed, err := h.seedFor(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad seed", err, "seed must be an integer")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Generate(), h.Log, "schedule generate")
	defer cancel()

	students, mentors, err := h.rosters(ctx)
	if err != nil {
		h.Metrics.RunFailed(metrics.OutcomeError)
		h.ErrLog.LogServerError(w, r, "load rosters failed", err, "A database error occurred.")
		return
	}

	run := allocator.NewSeeded(students, mentors, h.Catalog, seed)
	start := time.Now()
	if err := run.Generate(); err != nil {
		if errors.Is(err, allocator.ErrPrecondition) {
			h.Metrics.RunFailed(metrics.OutcomeRejected)
			h.Audit.ScheduleRejected(ctx, r, err.Error())
			h.ErrLog.LogStatus(w, r, http.StatusUnprocessableEntity, "schedule generate rejected", err, err.Error())
			return
		}
		h.Metrics.RunFailed(metrics.OutcomeError)
		h.ErrLog.LogServerError(w, r, "schedule generate failed", err, "Schedule generation failed.")
		return
	}
	elapsed := time.Since(start)

	record, err := h.storeRun(ctx, run)
	if err != nil {
		h.Metrics.RunFailed(metrics.OutcomeError)
		h.ErrLog.LogServerError(w, r, "store schedule failed", err, "A database error occurred.")
		return
	}

	shortfall := allocator.Shortfall(students, run.Assignments)
	conflicts := allocator.CrossConflicts(run.Assignments)

	h.Metrics.RunFinished(elapsed, record.PICount, record.GDGroupCount, len(shortfall), len(conflicts))
	h.Audit.ScheduleGenerated(ctx, r, run.ID, seed, record.PICount, record.GDGroupCount, len(shortfall))
	h.Log.Info("schedule generated",
		zap.String("run_id", run.ID),
		zap.Int64("seed", seed),
		zap.Int("students", len(students)),
		zap.Int("mentors", len(mentors)),
		zap.Int("pi_sessions", record.PICount),
		zap.Int("gd_groups", record.GDGroupCount),
		zap.Int("shortfall", len(shortfall)),
		zap.Int("cross_conflicts", len(conflicts)),
		zap.Duration("took", elapsed))

	uierrors.WriteJSON(w, http.StatusOK, generateResponse{
		Run:            record,
		Totals:         allocator.Summary(students, mentors, run.Assignments, run.Groups),
		Shortfall:      shortfall,
		CrossConflicts: conflicts,
		Utilization:    run.Utilization,
	})
}

// storeRun replaces the stored schedule with run and records it. Calls are
// serialized so two generates never interleave their writes.
func (h *Handler) storeRun(ctx context.Context, run *allocator.Run) (models.ScheduleRun, error) {
	h.persist.Lock()
	defer h.persist.Unlock()

	record := run.Record()
	// stamped under the lock so the newest stored run is the one whose rows survive
	record.CreatedAt = h.now().UTC()
	err := txn.Run(ctx, h.DB.Client(), h.Log, func(ctx context.Context) error {
		if err := h.Assignments.ReplaceAll(ctx, run.Assignments); err != nil {
			return err
		}
		if err := h.Groups.ReplaceAll(ctx, run.Groups); err != nil {
			return err
		}
		return h.Runs.Insert(ctx, record)
	})
	return record, err
}
