// internal/app/store/mentors/mentorstore.go
package mentorstore

import (
	"context"
	"time"

	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("mentors")}
}

// ReplaceAll discards the current mentor pool and stores mentors in order.
func (s *Store) ReplaceAll(ctx context.Context, mentors []models.Mentor) error {
	if _, err := s.c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(mentors) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]any, len(mentors))
	for i, m := range mentors {
		m.Seq = i
		m.NameCI = text.Fold(m.Name)
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		if m.Availability == nil {
			m.Availability = []string{}
		}
		if m.AvailableSlots == nil {
			m.AvailableSlots = []string{}
		}
		docs[i] = m
	}
	_, err := s.c.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

// List returns the mentor pool in upload order.
func (s *Store) List(ctx context.Context) ([]models.Mentor, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Mentor{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
