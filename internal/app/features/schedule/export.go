// internal/app/features/schedule/export.go
package schedule

import (
	"context"
	"net/http"

	assignmentstore "github.com/dalemusser/mentorhub/internal/app/store/assignments"
	"github.com/dalemusser/mentorhub/internal/app/system/allocator"
	"github.com/dalemusser/mentorhub/internal/app/system/csvutil"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeExport handles GET /schedule/export.csv[?spoc=]. Rows keep generation
// order: PI sessions first, then GD rows group by group.
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Assignments.List(ctx, assignmentstore.Filter{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list assignments failed", err, "A database error occurred.")
		return
	}
	if spoc := h.Sessions.SPOCFilter(r); spoc != "" {
		students, err := h.Students.ListBySPOC(ctx, spoc)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "resolve spoc filter failed", err, "A database error occurred.")
			return
		}
		rows = allocator.FilterAssignments(rows, allocator.Filter{StudentIDs: allocator.StudentSet(students)})
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="mentorship_schedule.csv"`)
	if err := csvutil.WriteScheduleCSV(w, rows); err != nil {
		// Headers are already sent; all we can do is log.
		h.Log.Error("write schedule csv failed", zap.Error(err))
	}
}
