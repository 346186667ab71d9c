package metricsstore

import (
	"context"

	assignmentstore "github.com/dalemusser/mentorhub/internal/app/store/assignments"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Counts is the set of totals shown on the schedule summary.
type Counts struct {
	Students      int64 `json:"students"`
	Mentors       int64 `json:"mentors"`
	PIAssignments int64 `json:"pi_sessions"`
	GDAssignments int64 `json:"gd_sessions"`
	GDGroups      int64 `json:"gd_groups"`
}

// FetchCounts returns the high-level counts of the stored roster and schedule.
// Intentionally tolerant: on error it returns 0 for that counter.
func FetchCounts(ctx context.Context, db *mongo.Database) Counts {
	var out Counts

	if n, err := db.Collection("students").CountDocuments(ctx, bson.M{}); err == nil {
		out.Students = n
	}
	if n, err := db.Collection("mentors").CountDocuments(ctx, bson.M{}); err == nil {
		out.Mentors = n
	}

	// assignments by session type
	assignments := assignmentstore.New(db)
	if n, err := assignments.CountByType(ctx, models.SessionPI); err == nil {
		out.PIAssignments = n
	}
	if n, err := assignments.CountByType(ctx, models.SessionGD); err == nil {
		out.GDAssignments = n
	}

	if n, err := db.Collection("gd_groups").CountDocuments(ctx, bson.M{}); err == nil {
		out.GDGroups = n
	}

	return out
}
