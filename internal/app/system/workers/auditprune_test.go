package workers

import (
	"testing"
	"time"

	"github.com/dalemusser/mentorhub/internal/app/store/audit"
	"github.com/dalemusser/mentorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestAuditPrune_PruneOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := audit.New(db)
	now := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	for _, age := range []time.Duration{100 * 24 * time.Hour, 91 * 24 * time.Hour, 24 * time.Hour} {
		e := audit.Event{Timestamp: now.Add(-age), Category: audit.CategorySchedule, EventType: audit.EventLinkUpdated}
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	w := NewAuditPrune(store, zap.NewNop(), time.Hour, 90*24*time.Hour)
	w.now = func() time.Time { return now }

	if got := w.PruneOnce(ctx); got != 2 {
		t.Errorf("pruned: got %d, want 2", got)
	}
	n, err := db.Collection("audit_events").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if n != 1 {
		t.Errorf("remaining: got %d, want 1", n)
	}
	if got := w.PruneOnce(ctx); got != 0 {
		t.Errorf("second prune: got %d, want 0", got)
	}
}

func TestAuditPrune_StartStop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	w := NewAuditPrune(audit.New(db), zap.NewNop(), time.Hour, time.Hour)
	w.Start()
	w.Stop()
}
