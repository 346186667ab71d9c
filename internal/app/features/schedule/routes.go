// internal/app/features/schedule/routes.go
package schedule

import (
	"github.com/dalemusser/mentorhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts under /schedule.
func Routes(h *Handler, gate *auth.AdminGate) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeSummary)
	r.Get("/runs", h.ServeRuns)
	r.Get("/assignments", h.ServeAssignments)
	r.Get("/overview", h.ServeOverview)
	r.Get("/utilization", h.ServeUtilization)
	r.Get("/shortfall", h.ServeShortfall)
	r.Get("/conflicts", h.ServeConflicts)
	r.Get("/export.csv", h.ServeExport)

	r.Group(func(pr chi.Router) {
		pr.Use(gate.Require)
		pr.Post("/generate", h.Generate)
		pr.Post("/assignments/{id}/link", h.UpdateLink)
	})
	return r
}
