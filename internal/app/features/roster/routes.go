// internal/app/features/roster/routes.go
package roster

import (
	"github.com/dalemusser/mentorhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts under /roster. Uploads replace a whole roster and need the
// admin key.
func Routes(h *Handler, gate *auth.AdminGate) chi.Router {
	r := chi.NewRouter()

	r.Get("/students", h.ListStudents)
	r.Get("/mentors", h.ListMentors)
	r.Get("/spocs", h.ListSPOCs)
	r.Get("/samples/{kind}.csv", h.ServeSample)

	r.Group(func(pr chi.Router) {
		pr.Use(gate.Require)
		pr.Post("/students", h.UploadStudents)
		pr.Post("/mentors", h.UploadMentors)
	})
	return r
}
