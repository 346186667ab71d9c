package allocator

import (
	"testing"

	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []models.Assignment {
	return []models.Assignment{
		{ID: "ASSIGN-1", StudentID: "STU001", MentorID: "MEN001", Type: models.SessionPI, Date: "2025-10-16", Slot: "12:00-12:30"},
		{ID: "ASSIGN-2", StudentID: "STU002", MentorID: "MEN002", Type: models.SessionPI, Date: "2025-10-17", Slot: "17:00-17:30"},
		{ID: "ASSIGN-3", StudentID: "STU002", MentorID: "MEN001", Type: models.SessionPI, Date: "2025-10-16", Slot: "12:30-13:00"},
		{ID: "ASSIGN-GD-0-STU001", StudentID: "STU001", MentorID: "MEN001", Type: models.SessionGD, GDGroupID: "GD-01", Date: "2025-10-16", Slot: "12:30-13:00"},
		{ID: "ASSIGN-GD-0-STU002", StudentID: "STU002", MentorID: "MEN001", Type: models.SessionGD, GDGroupID: "GD-01", Date: "2025-10-16", Slot: "12:30-13:00"},
		{ID: "ASSIGN-GD-1-STU003", StudentID: "STU003", MentorID: "MEN002", Type: models.SessionGD, GDGroupID: "GD-02", Date: "2025-10-17", Slot: "18:00-18:30"},
	}
}

func TestFilterBySPOC(t *testing.T) {
	students := []models.Student{{ID: "A", SPOC: "X"}, {ID: "B", SPOC: "Y"}, {ID: "C", SPOC: "X"}}
	assert.Len(t, FilterBySPOC(students, ""), 3)
	got := FilterBySPOC(students, "X")
	require.Len(t, got, 2)
	assert.Equal(t, "C", got[1].ID)
	assert.Empty(t, FilterBySPOC(students, "Z"))
}

func TestFilterAssignments(t *testing.T) {
	rows := sampleRows()
	assert.Len(t, FilterAssignments(rows, Filter{}), 6)
	assert.Len(t, FilterAssignments(rows, Filter{Type: models.SessionPI}), 3)
	assert.Len(t, FilterAssignments(rows, Filter{Date: "2025-10-17"}), 2)
	assert.Len(t, FilterAssignments(rows, Filter{MentorID: "MEN001", Type: models.SessionGD}), 2)

	got := FilterAssignments(rows, Filter{StudentIDs: StudentSet([]models.Student{{ID: "STU003"}})})
	require.Len(t, got, 1)
	assert.Equal(t, "ASSIGN-GD-1-STU003", got[0].ID)

	assert.Empty(t, FilterAssignments(rows, Filter{StudentIDs: map[string]struct{}{}}))
}

func TestDateOverview(t *testing.T) {
	got := DateOverview(catalog.Default(), sampleRows())
	require.Len(t, got, 4)
	assert.Equal(t, DateStat{Date: "2025-10-16", Sessions: 4, PI: 2, GDGroups: 1}, got[0])
	assert.Equal(t, DateStat{Date: "2025-10-17", Sessions: 2, PI: 1, GDGroups: 1}, got[1])
	assert.Equal(t, DateStat{Date: "2025-10-18"}, got[2])
}

func TestSummary(t *testing.T) {
	got := Summary(makeStudents(3), []models.Mentor{makeMentor(0, nil, nil)}, sampleRows(), make([]models.GDGroup, 2))
	assert.Equal(t, Totals{Students: 3, Mentors: 1, PISessions: 3, GDGroups: 2}, got)
}

func TestShortfall(t *testing.T) {
	students := makeStudents(3)
	students[0].SPOC = "ADITYA SINGH"
	got := Shortfall(students, sampleRows())
	require.Len(t, got, 2)
	assert.Equal(t, ShortfallEntry{StudentID: "STU001", Name: "Student 1", SPOC: "ADITYA SINGH", PICount: 1}, got[0])
	assert.Equal(t, "STU003", got[1].StudentID)
	assert.Equal(t, 0, got[1].PICount)
}

func TestCrossConflicts(t *testing.T) {
	got := CrossConflicts(sampleRows())
	require.Len(t, got, 1, "one per group, not per member")
	assert.Equal(t, CrossConflict{
		MentorID:       "MEN001",
		Date:           "2025-10-16",
		Slot:           "12:30-13:00",
		PIAssignmentID: "ASSIGN-3",
		GDGroupID:      "GD-01",
	}, got[0])
}
