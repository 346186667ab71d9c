package txn_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dalemusser/mentorhub/internal/app/system/txn"
	"github.com/dalemusser/mentorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestRun_WritesCommit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Collections must exist before a transaction can write to them.
	for _, name := range []string{"a", "b"} {
		if err := db.CreateCollection(ctx, name); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	err := txn.Run(ctx, db.Client(), zap.NewNop(), func(ctx context.Context) error {
		if _, err := db.Collection("a").InsertOne(ctx, bson.M{"_id": 1}); err != nil {
			return err
		}
		_, err := db.Collection("b").InsertOne(ctx, bson.M{"_id": 2})
		return err
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, name := range []string{"a", "b"} {
		n, err := db.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if n != 1 {
			t.Errorf("%s: got %d docs, want 1", name, n)
		}
	}
}

func TestRun_ReturnsFnError(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	boom := errors.New("boom")
	err := txn.Run(ctx, db.Client(), zap.NewNop(), func(ctx context.Context) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want boom", err)
	}
}
