// internal/app/store/students/studentstore.go
package studentstore

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
	return &Store{c: db.Collection("students")}
}

// ReplaceAll discards the current roster and stores students in their given
// order. Seq is reassigned from the slice position.
func (s *Store) ReplaceAll(ctx context.Context, students []models.Student) error {
	if _, err := s.c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(students) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]any, len(students))
	for i, st := range students {
		st.Seq = i
		st.NameCI = text.Fold(st.Name)
		if st.CreatedAt.IsZero() {
			st.CreatedAt = now
		}
		docs[i] = st
	}
	_, err := s.c.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

// List returns the roster in upload order.
func (s *Store) List(ctx context.Context) ([]models.Student, error) {
	return s.find(ctx, bson.M{})
}

// ListBySPOC returns the students tagged with spoc, in upload order.
func (s *Store) ListBySPOC(ctx context.Context, spoc string) ([]models.Student, error) {
	return s.find(ctx, bson.M{"spoc": spoc})
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Student, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Student{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
