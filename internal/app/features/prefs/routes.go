// internal/app/features/prefs/routes.go
package prefs

import "github.com/go-chi/chi/v5"

// Routes mounts the preference routes (typically at "/prefs").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePrefs)
	r.Post("/spoc", h.HandleSPOC)
	return r
}
