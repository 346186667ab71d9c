// internal/app/features/gd/handler.go
package gd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/mentorhub/internal/app/features/errors"
	gdgroupstore "github.com/dalemusser/mentorhub/internal/app/store/gdgroups"
	"github.com/dalemusser/mentorhub/internal/app/system/auditlog"
	"github.com/dalemusser/mentorhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/mentorhub/internal/app/system/limits"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the discussion-group attendance tracker.
type Handler struct {
	Groups *gdgroupstore.Store
	Audit  *auditlog.Logger
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Groups: gdgroupstore.New(db),
		Audit:  audit,
		ErrLog: errLog,
		Log:    logger,
	}
}

// ServeList handles GET /gd/: every group with its members, in group order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	groups, err := h.Groups.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list gd groups failed", err, "A database error occurred.")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, struct {
		Count  int              `json:"count"`
		Groups []models.GDGroup `json:"groups"`
	}{len(groups), groups})
}

// ServeGroup handles GET /gd/{id}.
func (h *Handler) ServeGroup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Groups.Get(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, gdgroupstore.ErrGroupNotFound) {
		uierrors.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load gd group failed", err, "A database error occurred.")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, g)
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles POST /gd/{id}/students/{studentID}/status with body
// {"status": "pending"|"in"|"out"}.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	studentID := chi.URLParam(r, "studentID")

	var req statusRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode status body failed", err, `body must be JSON like {"status": "in"}`)
		return
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !models.ValidAttendance(status) {
		uierrors.WriteError(w, http.StatusBadRequest, "status must be pending, in or out")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Groups.UpdateAttendance(ctx, groupID, studentID, status)
	switch {
	case errors.Is(err, gdgroupstore.ErrGroupNotFound), errors.Is(err, gdgroupstore.ErrMemberNotFound):
		h.ErrLog.LogStatus(w, r, http.StatusNotFound, "attendance update target missing", err, err.Error())
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "update attendance failed", err, "A database error occurred.")
		return
	}

	runID := ""
	if g, err := h.Groups.Get(ctx, groupID); err == nil {
		runID = g.RunID
	}
	h.Audit.AttendanceUpdated(ctx, r, runID, groupID, studentID, status)
	uierrors.WriteJSON(w, http.StatusOK, struct {
		GroupID   string `json:"group_id"`
		StudentID string `json:"student_id"`
		Status    string `json:"status"`
	}{groupID, studentID, status})
}

// UpdateLink handles POST /gd/{id}/link with body {"link": "..."}.
func (h *Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	var req struct {
		Link string `json:"link"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)).Decode(&req); err != nil {
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

	g, err := h.Groups.Get(ctx, groupID)
	if errors.Is(err, gdgroupstore.ErrGroupNotFound) {
		h.ErrLog.LogStatus(w, r, http.StatusNotFound, "link update for unknown group", err, err.Error())
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load gd group failed", err, "A database error occurred.")
		return
	}
	if err := h.Groups.UpdateLink(ctx, groupID, link); err != nil {
		h.ErrLog.LogServerError(w, r, "update gd link failed", err, "A database error occurred.")
		return
	}
	h.Audit.LinkUpdated(ctx, r, g.RunID, groupID, link == "")
	uierrors.WriteJSON(w, http.StatusOK, struct {
		ID       string `json:"id"`
		ZoomLink string `json:"zoom_link"`
	}{groupID, link})
}
