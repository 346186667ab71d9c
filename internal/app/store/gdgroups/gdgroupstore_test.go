package gdgroupstore_test

import (
	"errors"
	"testing"

	gdgroupstore "github.com/dalemusser/mentorhub/internal/app/store/gdgroups"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/dalemusser/mentorhub/internal/testutil"
)

func groups() []models.GDGroup {
	return []models.GDGroup{
		{
			ID: "GD-01", RunID: "run-1", Seq: 0, Topic: "AI in Everyday Life",
			MentorID: "MEN001", Date: "2025-10-16", Slot: "12:30-13:00", SlotType: models.SlotAfternoon,
			Students: []models.GDMember{
				{ID: "STU001", Name: "A", Status: models.AttendancePending},
				{ID: "STU002", Name: "B", Status: models.AttendancePending},
			},
		},
		{
			ID: "GD-02", RunID: "run-1", Seq: 1, Topic: "Climate Change Solutions",
			MentorID: "MEN002", Date: "2025-10-17", Slot: "17:00-17:30", SlotType: models.SlotEvening,
			Students: []models.GDMember{{ID: "STU003", Name: "C", Status: models.AttendancePending}},
		},
	}
}

func TestStore_ReplaceAllAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gdgroupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.ReplaceAll(ctx, groups()); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "GD-01" || got[1].ID != "GD-02" {
		t.Fatalf("unexpected groups: %+v", got)
	}
	if len(got[0].Students) != 2 || got[0].Students[1].ID != "STU002" {
		t.Errorf("member order not kept: %+v", got[0].Students)
	}
	n, err := store.Count(ctx)
	if err != nil || n != 2 {
		t.Errorf("Count: got %d, %v; want 2", n, err)
	}
}

func TestStore_UpdateAttendance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gdgroupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.ReplaceAll(ctx, groups()); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	if err := store.UpdateAttendance(ctx, "GD-01", "STU002", models.AttendanceIn); err != nil {
		t.Fatalf("UpdateAttendance failed: %v", err)
	}
	g, err := store.Get(ctx, "GD-01")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if g.Students[0].Status != models.AttendancePending {
		t.Errorf("STU001: got %q, want pending", g.Students[0].Status)
	}
	if g.Students[1].Status != models.AttendanceIn {
		t.Errorf("STU002: got %q, want in", g.Students[1].Status)
	}

	if err := store.UpdateAttendance(ctx, "GD-09", "STU001", models.AttendanceOut); !errors.Is(err, gdgroupstore.ErrGroupNotFound) {
		t.Errorf("unknown group: got %v", err)
	}
	if err := store.UpdateAttendance(ctx, "GD-02", "STU001", models.AttendanceOut); !errors.Is(err, gdgroupstore.ErrMemberNotFound) {
		t.Errorf("unknown member: got %v", err)
	}
}

func TestStore_UpdateLink(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gdgroupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.ReplaceAll(ctx, groups()); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	if err := store.UpdateLink(ctx, "GD-02", "https://meet.example.com/gd2"); err != nil {
		t.Fatalf("UpdateLink failed: %v", err)
	}
	g, _ := store.Get(ctx, "GD-02")
	if g.ZoomLink != "https://meet.example.com/gd2" {
		t.Errorf("ZoomLink: got %q", g.ZoomLink)
	}
	if err := store.UpdateLink(ctx, "GD-77", "x"); !errors.Is(err, gdgroupstore.ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}
	if _, err := store.Get(ctx, "GD-77"); !errors.Is(err, gdgroupstore.ErrGroupNotFound) {
		t.Errorf("Get: expected ErrGroupNotFound, got %v", err)
	}
}
