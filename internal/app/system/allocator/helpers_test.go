package allocator

import (
	"fmt"

	"github.com/dalemusser/mentorhub/internal/domain/models"
)

// script replays fixed draws so tests can assert exact schedules.
type script struct {
	vals []int
	pos  int
}

func (s *script) Intn(n int) int {
	if s.pos >= len(s.vals) {
		panic(fmt.Sprintf("script exhausted after %d draws", s.pos))
	}
	v := s.vals[s.pos]
	s.pos++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("draw %d: value %d out of range [0,%d)", s.pos-1, v, n))
	}
	return v
}

func makeStudents(n int) []models.Student {
	out := make([]models.Student, n)
	for i := range out {
		out[i] = models.Student{ID: fmt.Sprintf("STU%03d", i+1), Seq: i, Name: fmt.Sprintf("Student %d", i+1)}
	}
	return out
}

func makeMentor(i int, dates, slots []string) models.Mentor {
	return models.Mentor{
		ID:             fmt.Sprintf("MEN%03d", i+1),
		Seq:            i,
		Name:           fmt.Sprintf("Mentor %d", i+1),
		Availability:   dates,
		AvailableSlots: slots,
	}
}

// piViolations checks that no mentor cell and no student window is
// booked twice and that nobody holds more than two PI sessions.
func piViolations(as []models.Assignment) []string {
	var bad []string
	cells := map[string]string{}
	windows := map[string]bool{}
	perStudent := map[string]int{}
	mentorsPerStudent := map[string]map[string]bool{}
	for _, a := range as {
		if a.Type != models.SessionPI {
			continue
		}
		cell := a.MentorID + "|" + a.Date + "|" + a.SlotType + "|" + a.Slot
		if prev, ok := cells[cell]; ok {
			bad = append(bad, fmt.Sprintf("cell %s booked by %s and %s", cell, prev, a.ID))
		}
		cells[cell] = a.ID
		w := a.StudentID + "|" + a.Date + "|" + a.Slot
		if windows[w] {
			bad = append(bad, "student window booked twice: "+w)
		}
		windows[w] = true
		perStudent[a.StudentID]++
		if perStudent[a.StudentID] > 2 {
			bad = append(bad, "more than two PI sessions for "+a.StudentID)
		}
		if mentorsPerStudent[a.StudentID] == nil {
			mentorsPerStudent[a.StudentID] = map[string]bool{}
		}
		if mentorsPerStudent[a.StudentID][a.MentorID] {
			bad = append(bad, "same mentor twice for "+a.StudentID)
		}
		mentorsPerStudent[a.StudentID][a.MentorID] = true
	}
	return bad
}
