package indexes_test

import (
	"context"
	"testing"

	"github.com/dalemusser/mentorhub/internal/app/system/indexes"
	"github.com/dalemusser/mentorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func indexNames(t *testing.T, ctx context.Context, db *mongo.Database, coll string) map[string]bool {
	t.Helper()
	cur, err := db.Collection(coll).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	want := map[string][]string{
		"students":      {"uniq_students_seq", "idx_students_spoc_seq", "idx_students_nameci"},
		"mentors":       {"uniq_mentors_seq"},
		"assignments":   {"uniq_assignments_seq", "idx_assignments_student_type", "idx_assignments_mentor_date_slot", "idx_assignments_date_type", "idx_assignments_gdgroup"},
		"gd_groups":     {"uniq_gdgroups_seq", "idx_gdgroups_student"},
		"schedule_runs": {"idx_runs_createdat"},
		"audit_events":  {"idx_audit_timestamp", "idx_audit_category_type_timestamp", "idx_audit_run_timestamp"},
	}
	for coll, names := range want {
		got := indexNames(t, ctx, db, coll)
		for _, n := range names {
			if !got[n] {
				t.Errorf("%s: missing index %s", coll, n)
			}
		}
	}
}

func TestEnsureAll_UniqueSeqEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	c := db.Collection("mentors")
	if _, err := c.InsertOne(ctx, bson.M{"_id": "MEN001", "seq": 0}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	_, err := c.InsertOne(context.Background(), bson.M{"_id": "MEN002", "seq": 0})
	if !mongo.IsDuplicateKeyError(err) {
		t.Errorf("expected duplicate key error, got %v", err)
	}
}
