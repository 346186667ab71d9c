// internal/app/store/assignments/assignmentstore.go
package assignmentstore

import (
	"context"
	"errors"

	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no assignment has the given id.
var ErrNotFound = errors.New("assignment not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("assignments")}
}

// Filter narrows List. Empty fields match everything; a nil StudentIDs
// matches every student while an empty non-nil one matches none.
type Filter struct {
	Type       string
	Date       string
	MentorID   string
	StudentIDs []string
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if f.Type != "" {
		q["type"] = f.Type
	}
	if f.Date != "" {
		q["date"] = f.Date
	}
	if f.MentorID != "" {
		q["mentor_id"] = f.MentorID
	}
	if f.StudentIDs != nil {
		q["student_id"] = bson.M{"$in": f.StudentIDs}
	}
	return q
}

// ReplaceAll drops every stored assignment and writes the rows of a new run.
func (s *Store) ReplaceAll(ctx context.Context, as []models.Assignment) error {
	if _, err := s.c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(as) == 0 {
		return nil
	}
	docs := make([]any, len(as))
	for i := range as {
		docs[i] = as[i]
	}
	_, err := s.c.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

// List returns matching assignments in generation order.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Assignment, error) {
	if f.StudentIDs != nil && len(f.StudentIDs) == 0 {
		return []models.Assignment{}, nil
	}
	cur, err := s.c.Find(ctx, f.query(), options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Assignment{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (models.Assignment, error) {
	var a models.Assignment
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Assignment{}, ErrNotFound
	}
	return a, err
}

// UpdateLink sets the meeting link annotation. An empty link clears it.
func (s *Store) UpdateLink(ctx context.Context, id, link string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"zoom_link": link}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByType returns the number of rows of one session type.
func (s *Store) CountByType(ctx context.Context, typ string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"type": typ})
}
