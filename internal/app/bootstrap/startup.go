// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/mentorhub/internal/app/store/audit"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/dalemusser/mentorhub/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// auditPrune is started in Startup and stopped in Shutdown.
var auditPrune *workers.AuditPrune

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Batch:    appCfg.TimeoutBatch,
		Generate: appCfg.TimeoutGenerate,
	})
	cur := timeouts.Current()
	logger.Info("timeouts configured",
		zap.Duration("batch", cur.Batch),
		zap.Duration("generate", cur.Generate))

	if appCfg.AuditRetention > 0 && deps.MongoDatabase != nil {
		auditPrune = workers.NewAuditPrune(audit.New(deps.MongoDatabase), logger, appCfg.AuditPruneInterval, appCfg.AuditRetention)
		auditPrune.Start()
	}
	return nil
}
