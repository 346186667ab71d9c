// internal/app/features/auditlog/list.go
package auditlog

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	uierrors "github.com/dalemusser/mentorhub/internal/app/features/errors"
	"github.com/dalemusser/mentorhub/internal/app/store/audit"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
)

const pageSize = 50

// ServeList handles GET /audit: audit events newest first, filtered by
// category, event_type, run_id and an inclusive start_date/end_date range.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "audit log list")
	defer cancel()

	q := r.URL.Query()
	category := strings.TrimSpace(q.Get("category"))
	eventType := strings.TrimSpace(q.Get("event_type"))
	runID := strings.TrimSpace(q.Get("run_id"))
	startDate := strings.TrimSpace(q.Get("start_date"))
	endDate := strings.TrimSpace(q.Get("end_date"))

	if !knownCategory(category) {
		uierrors.WriteError(w, http.StatusBadRequest, "unknown category "+strconv.Quote(category))
		return
	}

	page := 1
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		page = p
	}

	filter := audit.QueryFilter{
		Category:  category,
		EventType: eventType,
		RunID:     runID,
		Limit:     pageSize,
		Offset:    int64((page - 1) * pageSize),
	}
	if startDate != "" {
		t, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			uierrors.WriteError(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		filter.StartTime = &t
	}
	if endDate != "" {
		t, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			uierrors.WriteError(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
			return
		}
		// End of day
		endOfDay := t.Add(24*time.Hour - time.Second)
		filter.EndTime = &endOfDay
	}

	events, err := h.Events.Query(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "query audit events failed", err, "A database error occurred.")
		return
	}
	total, err := h.Events.CountByFilter(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count audit events failed", err, "A database error occurred.")
		return
	}
	if events == nil {
		events = []audit.Event{}
	}

	totalPages := int((total + pageSize - 1) / pageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	uierrors.WriteJSON(w, http.StatusOK, listResponse{
		Events:     events,
		Category:   category,
		EventType:  eventType,
		RunID:      runID,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	})
}

// ServeTypes handles GET /audit/types: the filterable categories and
// the event types recorded under each.
func (h *Handler) ServeTypes(w http.ResponseWriter, r *http.Request) {
	uierrors.WriteJSON(w, http.StatusOK, struct {
		Categories []categoryOption `json:"categories"`
	}{allCategories()})
}
