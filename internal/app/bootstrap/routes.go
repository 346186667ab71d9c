// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	auditlogfeature "github.com/dalemusser/mentorhub/internal/app/features/auditlog"
	errorsfeature "github.com/dalemusser/mentorhub/internal/app/features/errors"
	gdfeature "github.com/dalemusser/mentorhub/internal/app/features/gd"
	healthfeature "github.com/dalemusser/mentorhub/internal/app/features/health"
	prefsfeature "github.com/dalemusser/mentorhub/internal/app/features/prefs"
	rosterfeature "github.com/dalemusser/mentorhub/internal/app/features/roster"
	schedulefeature "github.com/dalemusser/mentorhub/internal/app/features/schedule"
	"github.com/dalemusser/mentorhub/internal/app/store/audit"
	"github.com/dalemusser/mentorhub/internal/app/system/auditlog"
	"github.com/dalemusser/mentorhub/internal/app/system/auth"
	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/app/system/metrics"
	"github.com/dalemusser/mentorhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. mentorhub builds the shared pieces
// (catalog, session cookies, admin gate, audit logger, metrics) once and
// mounts one JSON feature router per area.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	cat, err := catalog.Load(appCfg.CatalogFile)
	if err != nil {
		logger.Error("catalog load failed", zap.Error(err))
		return nil, err
	}

	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionKey := appCfg.SessionKey
	if sessionKey == "" {
		logger.Warn("session_key not set; using a throwaway key")
		sessionKey = auth.DevSessionKey()
	}
	sessionMgr, err := auth.NewSessionManager(sessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	auditLog := auditlog.New(audit.New(deps.MongoDatabase), logger, auditlog.Config{
		Roster:   appCfg.AuditRoster,
		Schedule: appCfg.AuditSchedule,
	})

	limiter := ratelimit.New(appCfg.AdminLockoutAttempts, appCfg.AdminLockoutWindow)
	gate, err := auth.NewAdminGate(appCfg.AdminKeyHash, limiter, auditLog.AdminKeyRejected, logger)
	if err != nil {
		logger.Error("admin gate init failed", zap.Error(err))
		return nil, err
	}

	m := metrics.New()
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.NotFound(errorsfeature.NotFound)
	r.MethodNotAllowed(errorsfeature.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, cat, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Handle("/metrics", m.Handler())

	// Roster ingestion
	rosterHandler := rosterfeature.NewHandler(deps.MongoDatabase, cat, sessionMgr, auditLog, m, errLog, logger)
	r.Mount("/roster", rosterfeature.Routes(rosterHandler, gate))

	// Schedule generation and views
	scheduleHandler := schedulefeature.NewHandler(deps.MongoDatabase, cat, appCfg.ScheduleSeed, sessionMgr, auditLog, m, errLog, logger)
	r.Mount("/schedule", schedulefeature.Routes(scheduleHandler, gate))

	// GD attendance tracker
	gdHandler := gdfeature.NewHandler(deps.MongoDatabase, auditLog, errLog, logger)
	r.Mount("/gd", gdfeature.Routes(gdHandler, gate))

	// Viewer preferences
	prefsHandler := prefsfeature.NewHandler(cat, sessionMgr, errLog, logger)
	r.Mount("/prefs", prefsfeature.Routes(prefsHandler))

	// Audit trail
	auditHandler := auditlogfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/audit", auditlogfeature.Routes(auditHandler, gate))

	return r, nil
}
