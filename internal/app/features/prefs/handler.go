// internal/app/features/prefs/handler.go
package prefs

import (
	uierrors "github.com/dalemusser/mentorhub/internal/app/features/errors"
	"github.com/dalemusser/mentorhub/internal/app/system/auth"
	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"go.uber.org/zap"
)

// Handler owns the viewer preference endpoints. Preferences live in the
// session cookie only; nothing is written to Mongo.
type Handler struct {
	Catalog  catalog.Catalog
	Sessions *auth.SessionManager
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

// NewHandler constructs a Handler bound to the catalog and session manager.
func NewHandler(cat catalog.Catalog, sessions *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:  cat,
		Sessions: sessions,
		Log:      logger,
		ErrLog:   errLog,
	}
}
