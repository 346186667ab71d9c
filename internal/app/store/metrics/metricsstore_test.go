package metricsstore_test

import (
	"testing"

	metricsstore "github.com/dalemusser/mentorhub/internal/app/store/metrics"
	"github.com/dalemusser/mentorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFetchCounts_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	counts := metricsstore.FetchCounts(ctx, db)

	if counts != (metricsstore.Counts{}) {
		t.Errorf("expected all zero counts, got %+v", counts)
	}
}

func TestFetchCounts_WithData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.InsertStudents(ctx, testutil.Students(7))
	fixtures.InsertMentors(ctx, testutil.Mentors(2, "2025-10-16"))

	_, err := db.Collection("assignments").InsertMany(ctx, []any{
		bson.M{"_id": "ASSIGN-1", "type": "PI"},
		bson.M{"_id": "ASSIGN-2", "type": "PI"},
		bson.M{"_id": "ASSIGN-GD-0-STU001", "type": "GD"},
	})
	if err != nil {
		t.Fatalf("insert assignments: %v", err)
	}
	if _, err := db.Collection("gd_groups").InsertOne(ctx, bson.M{"_id": "GD-01"}); err != nil {
		t.Fatalf("insert group: %v", err)
	}

	counts := metricsstore.FetchCounts(ctx, db)

	if counts.Students != 7 {
		t.Errorf("Students: got %d, want 7", counts.Students)
	}
	if counts.Mentors != 2 {
		t.Errorf("Mentors: got %d, want 2", counts.Mentors)
	}
	if counts.PIAssignments != 2 {
		t.Errorf("PIAssignments: got %d, want 2", counts.PIAssignments)
	}
	if counts.GDAssignments != 1 {
		t.Errorf("GDAssignments: got %d, want 1", counts.GDAssignments)
	}
	if counts.GDGroups != 1 {
		t.Errorf("GDGroups: got %d, want 1", counts.GDGroups)
	}
}
