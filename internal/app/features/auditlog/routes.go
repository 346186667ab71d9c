// internal/app/features/auditlog/routes.go
package auditlog

import (
	"github.com/dalemusser/mentorhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all audit log routes under the path where this
// router is mounted (typically "/audit" from bootstrap).
//
// Events carry client IPs, so the whole listing sits behind the admin key.
func Routes(h *Handler, gate *auth.AdminGate) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(gate.Require)
		pr.Get("/", h.ServeList)
		pr.Get("/types", h.ServeTypes)
	})

	return r
}
