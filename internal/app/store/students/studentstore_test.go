package studentstore_test

import (
	"testing"

	studentstore "github.com/dalemusser/mentorhub/internal/app/store/students"
	"github.com/dalemusser/mentorhub/internal/testutil"
)

func TestStore_ReplaceAll_ListOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := studentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	roster := testutil.Students(5, "Dr. Anjali Sharma", "Prof. Rajesh Kumar")
	// Seq on input is ignored; slice order wins.
	roster[0].Seq, roster[4].Seq = 9, 7
	if err := store.ReplaceAll(ctx, roster); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("len: got %d, want 5", len(got))
	}
	for i, st := range got {
		if st.ID != roster[i].ID {
			t.Errorf("position %d: got %s, want %s", i, st.ID, roster[i].ID)
		}
		if st.Seq != i {
			t.Errorf("%s seq: got %d, want %d", st.ID, st.Seq, i)
		}
		if st.NameCI == "" {
			t.Errorf("%s: expected NameCI to be set", st.ID)
		}
	}
}

func TestStore_ReplaceAll_Replaces(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := studentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.ReplaceAll(ctx, testutil.Students(10)); err != nil {
		t.Fatalf("first ReplaceAll failed: %v", err)
	}
	if err := store.ReplaceAll(ctx, testutil.Students(3)); err != nil {
		t.Fatalf("second ReplaceAll failed: %v", err)
	}
	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("count: got %d, want 3", n)
	}

	if err := store.ReplaceAll(ctx, nil); err != nil {
		t.Fatalf("empty ReplaceAll failed: %v", err)
	}
	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %v", got)
	}
}

func TestStore_ListBySPOC(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := studentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.ReplaceAll(ctx, testutil.Students(6, "A", "B", "C")); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	got, err := store.ListBySPOC(ctx, "B")
	if err != nil {
		t.Fatalf("ListBySPOC failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len: got %d, want 2", len(got))
	}
	if got[0].ID != "STU002" || got[1].ID != "STU005" {
		t.Errorf("got %s,%s, want STU002,STU005", got[0].ID, got[1].ID)
	}
}
