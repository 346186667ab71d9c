// internal/app/store/gdgroups/gdgroupstore.go
package gdgroupstore

import (
	"context"
	"errors"

	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrGroupNotFound  = errors.New("discussion group not found")
	ErrMemberNotFound = errors.New("student is not a member of this group")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("gd_groups")}
}

func (s *Store) ReplaceAll(ctx context.Context, groups []models.GDGroup) error {
	if _, err := s.c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(groups) == 0 {
		return nil
	}
	docs := make([]any, len(groups))
	for i := range groups {
		docs[i] = groups[i]
	}
	_, err := s.c.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

// List returns groups in creation order.
func (s *Store) List(ctx context.Context) ([]models.GDGroup, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.GDGroup{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (models.GDGroup, error) {
	var g models.GDGroup
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.GDGroup{}, ErrGroupNotFound
	}
	return g, err
}

// UpdateAttendance sets one member's status. The caller validates status.
func (s *Store) UpdateAttendance(ctx context.Context, groupID, studentID, status string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": groupID, "students.id": studentID},
		bson.M{"$set": bson.M{"students.$.status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}
	n, err := s.c.CountDocuments(ctx, bson.M{"_id": groupID})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGroupNotFound
	}
	return ErrMemberNotFound
}

// UpdateLink sets the group's meeting link. An empty link clears it.
func (s *Store) UpdateLink(ctx context.Context, groupID, link string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": groupID}, bson.M{"$set": bson.M{"zoom_link": link}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrGroupNotFound
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
