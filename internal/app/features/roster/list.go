// internal/app/features/roster/list.go
package roster

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/mentorhub/internal/app/features/errors"
	"github.com/dalemusser/mentorhub/internal/app/system/csvutil"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

type studentsResponse struct {
	SPOC     string           `json:"spoc,omitempty"`
	Count    int              `json:"count"`
	Students []models.Student `json:"students"`
}

// ListStudents handles GET /roster/students[?spoc=].
// Without a spoc parameter the viewer's remembered SPOC applies.
func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	spoc := h.Sessions.SPOCFilter(r)

	var (
		students []models.Student
		err      error
	)
	if spoc == "" {
		students, err = h.Students.List(ctx)
	} else {
		students, err = h.Students.ListBySPOC(ctx, spoc)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list students failed", err, "A database error occurred.")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, studentsResponse{SPOC: spoc, Count: len(students), Students: students})
}

// ListMentors handles GET /roster/mentors.
func (h *Handler) ListMentors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	mentors, err := h.Mentors.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list mentors failed", err, "A database error occurred.")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, struct {
		Count   int             `json:"count"`
		Mentors []models.Mentor `json:"mentors"`
	}{len(mentors), mentors})
}

// ListSPOCs handles GET /roster/spocs: the coordinator catalog in order.
func (h *Handler) ListSPOCs(w http.ResponseWriter, r *http.Request) {
	uierrors.WriteJSON(w, http.StatusOK, struct {
		SPOCs    []string `json:"spocs"`
		Selected string   `json:"selected"`
	}{h.Catalog.SPOCs, h.Sessions.SelectedSPOC(r)})
}

// ServeSample handles GET /roster/samples/{kind}.csv.
func (h *Handler) ServeSample(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	body, ok := csvutil.Sample(kind)
	if !ok {
		uierrors.WriteError(w, http.StatusNotFound, "unknown sample "+kind)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sample_`+kind+`.csv"`)
	_, _ = w.Write([]byte(body))
}
