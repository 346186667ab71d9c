// internal/app/features/schedule/link.go
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/mentorhub/internal/app/features/errors"
	assignmentstore "github.com/dalemusser/mentorhub/internal/app/store/assignments"
	"github.com/dalemusser/mentorhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/mentorhub/internal/app/system/limits"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

type linkRequest struct {
	Link string `json:"link"`
}

type linkResponse struct {
	ID       string `json:"id"`
	ZoomLink string `json:"zoom_link"`
}

// UpdateLink handles POST /schedule/assignments/{id}/link with body
// {"link": "..."}. An empty link clears the annotation.
func (h *Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req linkRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limits.MaxJSONBody))
	if err := dec.Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode link body failed", err, `body must be JSON like {"link": "https://..."}`)
		return
	}
	link, err := htmlsanitize.SessionLink(req.Link, limits.MaxLinkLength)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "link rejected", err, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Assignments.Get(ctx, id)
	if errors.Is(err, assignmentstore.ErrNotFound) {
		h.ErrLog.LogStatus(w, r, http.StatusNotFound, "link update for unknown assignment", err, "assignment not found")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load assignment failed", err, "A database error occurred.")
		return
	}
	if err := h.Assignments.UpdateLink(ctx, id, link); err != nil {
		if errors.Is(err, assignmentstore.ErrNotFound) {
			h.ErrLog.LogStatus(w, r, http.StatusNotFound, "assignment vanished during link update", err, "assignment not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "update link failed", err, "A database error occurred.")
		return
	}

	h.Audit.LinkUpdated(ctx, r, a.RunID, id, link == "")
	uierrors.WriteJSON(w, http.StatusOK, linkResponse{ID: id, ZoomLink: link})
}
