package allocator

import (
	"fmt"

	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/domain/models"
)

// AllocatePI books personal-interview sessions.
//
// Students are served in slice order. Each student gets up to AttemptBudget
// attempts to secure PITarget distinct mentors. An attempt draws, in order, a
// mentor from the whole pool, one of that mentor's dates, one of its slot
// categories and a window index. It commits only when the grid cell is free
// and the student has nothing else in that (date, window). A student who
// runs out of attempts keeps whatever was secured.
//
// nextID is called once per committed session and returns its id.
func AllocatePI(students []models.Student, mentors []models.Mentor, cat catalog.Catalog, grid *Grid, ledger *Ledger, rng Source, nextID func() string) []models.Assignment {
	var out []models.Assignment
	if len(mentors) == 0 {
		return out
	}

	for _, s := range students {
		secured := make(map[string]bool, catalog.PITarget)
		for attempt := 0; attempt < catalog.AttemptBudget && len(secured) < catalog.PITarget; attempt++ {
			m := mentors[rng.Intn(len(mentors))]
			if secured[m.ID] {
				continue
			}
			if len(m.Availability) == 0 || len(m.AvailableSlots) == 0 {
				continue
			}
			date := m.Availability[rng.Intn(len(m.Availability))]
			category := m.AvailableSlots[rng.Intn(len(m.AvailableSlots))]
			idx := rng.Intn(catalog.SlotsPerCategory)

			window, ok := cat.Window(category, idx)
			if !ok || !grid.Free(m.ID, date, category, idx) || ledger.Has(s.ID, date, window) {
				continue
			}

			grid.Occupy(m.ID, date, category, idx, Occupant{StudentID: s.ID, SessionType: models.SessionPI})
			ledger.Add(s.ID, date, window)
			secured[m.ID] = true

			out = append(out, models.Assignment{
				ID:          nextID(),
				StudentID:   s.ID,
				StudentName: s.Name,
				MentorID:    m.ID,
				MentorName:  m.Name,
				Type:        models.SessionPI,
				PINumber:    len(secured),
				Date:        date,
				Slot:        window,
				SlotType:    category,
				Status:      models.AssignmentScheduled,
			})
		}
	}
	return out
}

// piCounter returns an id generator producing ASSIGN-1, ASSIGN-2, ...
func piCounter() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ASSIGN-%d", n)
	}
}
