// internal/app/features/schedule/views.go
package schedule

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/mentorhub/internal/app/features/errors"
	assignmentstore "github.com/dalemusser/mentorhub/internal/app/store/assignments"
	metricsstore "github.com/dalemusser/mentorhub/internal/app/store/metrics"
	runstore "github.com/dalemusser/mentorhub/internal/app/store/runs"
	"github.com/dalemusser/mentorhub/internal/app/system/allocator"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

type summaryResponse struct {
	Run    *models.ScheduleRun `json:"run"`
	Counts metricsstore.Counts `json:"counts"`
	Dates  []string            `json:"dates"`
}

// ServeSummary handles GET /schedule/: the latest run (null before the first
// generation) and the stored totals.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	resp := summaryResponse{Dates: h.Catalog.Dates}
	latest, err := h.Runs.Latest(ctx)
	switch {
	case err == nil:
		resp.Run = &latest
	case errors.Is(err, runstore.ErrNoRuns):
	default:
		h.ErrLog.LogServerError(w, r, "load latest run failed", err, "A database error occurred.")
		return
	}
	resp.Counts = metricsstore.FetchCounts(ctx, h.DB)
	uierrors.WriteJSON(w, http.StatusOK, resp)
}

// ServeRuns handles GET /schedule/runs: recent generations, newest first.
func (h *Handler) ServeRuns(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	runs, err := h.Runs.Recent(ctx, 20)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list runs failed", err, "A database error occurred.")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, struct {
		Runs []models.ScheduleRun `json:"runs"`
	}{runs})
}

// assignmentFilter reads ?type=&date=&mentor= and resolves the SPOC filter
// to the matching student ids.
func (h *Handler) assignmentFilter(ctx context.Context, r *http.Request) (assignmentstore.Filter, string, error) {
	f := assignmentstore.Filter{
		Type:     query.Get(r, "type"),
		Date:     query.Get(r, "date"),
		MentorID: query.Get(r, "mentor"),
	}
	if f.Type != "" && f.Type != models.SessionPI && f.Type != models.SessionGD {
		return f, "", errBadType
	}
	spoc := h.Sessions.SPOCFilter(r)
	if spoc != "" {
		students, err := h.Students.ListBySPOC(ctx, spoc)
		if err != nil {
			return f, spoc, err
		}
		f.StudentIDs = make([]string, len(students))
		for i, s := range students {
			f.StudentIDs[i] = s.ID
		}
	}
	return f, spoc, nil
}

var errBadType = errors.New("type must be PI or GD")

// ServeAssignments handles GET /schedule/assignments?spoc=&type=&date=&mentor=.
func (h *Handler) ServeAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f, spoc, err := h.assignmentFilter(ctx, r)
	if errors.Is(err, errBadType) {
		h.ErrLog.LogBadRequest(w, r, "bad assignment filter", err, err.Error())
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "resolve spoc filter failed", err, "A database error occurred.")
		return
	}

	rows, err := h.Assignments.List(ctx, f)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list assignments failed", err, "A database error occurred.")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, struct {
		SPOC        string              `json:"spoc,omitempty"`
		Count       int                 `json:"count"`
		Assignments []models.Assignment `json:"assignments"`
	}{spoc, len(rows), rows})
}

// ServeOverview handles GET /schedule/overview: per-date session counts.
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Assignments.List(ctx, assignmentstore.Filter{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list assignments failed", err, "A database error occurred.")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, struct {
		Dates []allocator.DateStat `json:"dates"`
	}{allocator.DateOverview(h.Catalog, rows)})
}

// ServeUtilization handles GET /schedule/utilization.
func (h *Handler) ServeUtilization(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	snap, err := h.loadSnapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load schedule failed", err, "A database error occurred.")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, struct {
		Mentors []models.MentorUtilization `json:"mentors"`
	}{allocator.Utilization(snap.Assignments, snap.Mentors)})
}

type shortfallResponse struct {
	Count    int                        `json:"count"`
	Students []allocator.ShortfallEntry `json:"students"`
}

// ServeShortfall handles GET /schedule/shortfall[?spoc=]: students with
// fewer than two PI mentors.
func (h *Handler) ServeShortfall(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	snap, err := h.loadSnapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load schedule failed", err, "A database error occurred.")
		return
	}
	if len(snap.Assignments) == 0 {
		// Nothing generated yet; every student would show as short.
		uierrors.WriteJSON(w, http.StatusOK, shortfallResponse{Students: []allocator.ShortfallEntry{}})
		return
	}
	students := allocator.FilterBySPOC(snap.Students, h.Sessions.SPOCFilter(r))
	short := allocator.Shortfall(students, snap.Assignments)
	uierrors.WriteJSON(w, http.StatusOK, shortfallResponse{Count: len(short), Students: short})
}

// ServeConflicts handles GET /schedule/conflicts: mentors holding a PI
// session and a GD group in the same window.
func (h *Handler) ServeConflicts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Assignments.List(ctx, assignmentstore.Filter{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list assignments failed", err, "A database error occurred.")
		return
	}
	conflicts := allocator.CrossConflicts(rows)
	uierrors.WriteJSON(w, http.StatusOK, struct {
		Count     int                       `json:"count"`
		Conflicts []allocator.CrossConflict `json:"conflicts"`
	}{len(conflicts), conflicts})
}
