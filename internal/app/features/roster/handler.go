// internal/app/features/roster/handler.go
package roster

import (
	uierrors "github.com/dalemusser/mentorhub/internal/app/features/errors"
	mentorstore "github.com/dalemusser/mentorhub/internal/app/store/mentors"
	studentstore "github.com/dalemusser/mentorhub/internal/app/store/students"
	"github.com/dalemusser/mentorhub/internal/app/system/auditlog"
	"github.com/dalemusser/mentorhub/internal/app/system/auth"
	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/app/system/csvutil"
	"github.com/dalemusser/mentorhub/internal/app/system/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves roster uploads and listings.
type Handler struct {
	Client   *mongo.Client
	Students *studentstore.Store
	Mentors  *mentorstore.Store
	Catalog  catalog.Catalog
	Sessions *auth.SessionManager
	Audit    *auditlog.Logger
	Metrics  *metrics.Metrics
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger

	parseOpts csvutil.ParseOptions
}

func NewHandler(db *mongo.Database, cat catalog.Catalog, sessions *auth.SessionManager, audit *auditlog.Logger, m *metrics.Metrics, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Client:    db.Client(),
		Students:  studentstore.New(db),
		Mentors:   mentorstore.New(db),
		Catalog:   cat,
		Sessions:  sessions,
		Audit:     audit,
		Metrics:   m,
		ErrLog:    errLog,
		Log:       logger,
		parseOpts: csvutil.DefaultParseOptions(),
	}
}
