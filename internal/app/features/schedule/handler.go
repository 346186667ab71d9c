// internal/app/features/schedule/handler.go
package schedule

import (
	"context"
	"sync"
	"time"

	uierrors "github.com/dalemusser/mentorhub/internal/app/features/errors"
	assignmentstore "github.com/dalemusser/mentorhub/internal/app/store/assignments"
	gdgroupstore "github.com/dalemusser/mentorhub/internal/app/store/gdgroups"
	mentorstore "github.com/dalemusser/mentorhub/internal/app/store/mentors"
	runstore "github.com/dalemusser/mentorhub/internal/app/store/runs"
	studentstore "github.com/dalemusser/mentorhub/internal/app/store/students"
	"github.com/dalemusser/mentorhub/internal/app/system/auditlog"
	"github.com/dalemusser/mentorhub/internal/app/system/auth"
	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/app/system/metrics"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Handler serves schedule generation, the read-only views over the latest
// run, and link edits.
type Handler struct {
	DB          *mongo.Database
	Students    *studentstore.Store
	Mentors     *mentorstore.Store
	Assignments *assignmentstore.Store
	Groups      *gdgroupstore.Store
	Runs        *runstore.Store

	Catalog  catalog.Catalog
	Seed     int64 // 0 seeds each run from the clock
	Sessions *auth.SessionManager
	Audit    *auditlog.Logger
	Metrics  *metrics.Metrics
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger

	now func() time.Time

	// persist serializes the replace-all writes of concurrent generate
	// calls. Without a replica set those writes run outside a transaction.
	persist sync.Mutex
}

func NewHandler(db *mongo.Database, cat catalog.Catalog, seed int64, sessions *auth.SessionManager, audit *auditlog.Logger, m *metrics.Metrics, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Students:    studentstore.New(db),
		Mentors:     mentorstore.New(db),
		Assignments: assignmentstore.New(db),
		Groups:      gdgroupstore.New(db),
		Runs:        runstore.New(db),
		Catalog:     cat,
		Seed:        seed,
		Sessions:    sessions,
		Audit:       audit,
		Metrics:     m,
		ErrLog:      errLog,
		Log:         logger,
		now:         time.Now,
	}
}

// rosters loads both rosters concurrently.
func (h *Handler) rosters(ctx context.Context) ([]models.Student, []models.Mentor, error) {
	var (
		students []models.Student
		mentors  []models.Mentor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		students, err = h.Students.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		mentors, err = h.Mentors.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return students, mentors, nil
}

// snapshot is everything stored for the latest run plus the rosters it was
// built from.
type snapshot struct {
	Students    []models.Student
	Mentors     []models.Mentor
	Assignments []models.Assignment
	Groups      []models.GDGroup
}

func (h *Handler) loadSnapshot(ctx context.Context) (snapshot, error) {
	var s snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		s.Students, s.Mentors, err = h.rosters(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		s.Assignments, err = h.Assignments.List(gctx, assignmentstore.Filter{})
		return err
	})
	g.Go(func() error {
		var err error
		s.Groups, err = h.Groups.List(gctx)
		return err
	})
	return s, g.Wait()
}
