// internal/app/features/gd/routes.go
package gd

import (
	"github.com/dalemusser/mentorhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts under /gd. Attendance and link edits need the admin key.
func Routes(h *Handler, gate *auth.AdminGate) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGroup)

	r.Group(func(pr chi.Router) {
		pr.Use(gate.Require)
		pr.Post("/{id}/students/{studentID}/status", h.UpdateStatus)
		pr.Post("/{id}/link", h.UpdateLink)
	})
	return r
}
