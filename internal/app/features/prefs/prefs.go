// internal/app/features/prefs/prefs.go
package prefs

import (
	"encoding/json"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/mentorhub/internal/app/features/errors"
	"github.com/dalemusser/mentorhub/internal/app/system/limits"
	"go.uber.org/zap"
)

type prefsResponse struct {
	SPOC  string   `json:"spoc"`
	SPOCs []string `json:"spocs"`
}

// ServePrefs handles GET /prefs/: the remembered SPOC and the choices.
func (h *Handler) ServePrefs(w http.ResponseWriter, r *http.Request) {
	uierrors.WriteJSON(w, http.StatusOK, prefsResponse{
		SPOC:  h.Sessions.SelectedSPOC(r),
		SPOCs: h.Catalog.SPOCs,
	})
}

// HandleSPOC handles POST /prefs/spoc with body {"spoc": "..."}.
// An empty value clears the filter.
func (h *Handler) HandleSPOC(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SPOC string `json:"spoc"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode spoc body failed", err, `body must be JSON like {"spoc": "Dr. Sharma"}`)
		return
	}
	spoc := strings.TrimSpace(req.SPOC)
	if spoc != "" && !h.Catalog.HasSPOC(spoc) {
		uierrors.WriteError(w, http.StatusBadRequest, "unknown SPOC")
		return
	}
	if err := h.Sessions.SaveSPOC(w, r, spoc); err != nil {
		h.ErrLog.LogServerError(w, r, "save spoc preference failed", err, "Could not save the preference.")
		return
	}
	h.Log.Debug("spoc preference saved", zap.String("spoc", spoc))
	uierrors.WriteJSON(w, http.StatusOK, prefsResponse{SPOC: spoc, SPOCs: h.Catalog.SPOCs})
}
