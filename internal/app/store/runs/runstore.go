// internal/app/store/runs/runstore.go
package runstore

import (
	"context"
	"errors"

	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoRuns is returned by Latest before the first generation.
var ErrNoRuns = errors.New("no schedule has been generated")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("schedule_runs")}
}

// Insert records a run. Run history is kept even though only the latest
// run's assignments survive.
func (s *Store) Insert(ctx context.Context, run models.ScheduleRun) error {
	_, err := s.c.InsertOne(ctx, run)
	return err
}

func (s *Store) Latest(ctx context.Context) (models.ScheduleRun, error) {
	var r models.ScheduleRun
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	err := s.c.FindOne(ctx, bson.M{}, opts).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ScheduleRun{}, ErrNoRuns
	}
	return r, err
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int64) ([]models.ScheduleRun, error) {
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.ScheduleRun{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
