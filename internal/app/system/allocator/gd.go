package allocator

import (
	"fmt"

	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/domain/models"
)

// GroupGD splits students into discussion groups of GroupSize in slice
// order; the last group may be short. Group i takes topic, mentor and date
// at index i modulo each list, the afternoon category when i is even and
// evening when odd, and one window drawn at random from that category.
//
// The grid is not consulted, so a GD mentor may also hold a PI session in
// the same window. CrossConflicts reports those cases.
func GroupGD(students []models.Student, mentors []models.Mentor, cat catalog.Catalog, rng Source) ([]models.GDGroup, []models.Assignment) {
	var (
		groups []models.GDGroup
		rows   []models.Assignment
	)
	if len(mentors) == 0 || len(cat.Dates) == 0 || len(cat.Topics) == 0 {
		return groups, rows
	}

	for i, start := 0, 0; start < len(students); i, start = i+1, start+catalog.GroupSize {
		end := start + catalog.GroupSize
		if end > len(students) {
			end = len(students)
		}
		chunk := students[start:end]

		m := mentors[i%len(mentors)]
		category := models.SlotAfternoon
		if i%2 == 1 {
			category = models.SlotEvening
		}
		window, _ := cat.Window(category, rng.Intn(catalog.SlotsPerCategory))

		g := models.GDGroup{
			ID:         fmt.Sprintf("GD-%02d", i+1),
			Seq:        i,
			Topic:      cat.Topics[i%len(cat.Topics)],
			MentorID:   m.ID,
			MentorName: m.Name,
			Date:       cat.Dates[i%len(cat.Dates)],
			Slot:       window,
			SlotType:   category,
			Students:   make([]models.GDMember, 0, len(chunk)),
		}
		for _, s := range chunk {
			g.Students = append(g.Students, models.GDMember{ID: s.ID, Name: s.Name, Status: models.AttendancePending})
			rows = append(rows, models.Assignment{
				ID:          fmt.Sprintf("ASSIGN-GD-%d-%s", i, s.ID),
				StudentID:   s.ID,
				StudentName: s.Name,
				MentorID:    m.ID,
				MentorName:  m.Name,
				Type:        models.SessionGD,
				GDGroupID:   g.ID,
				Date:        g.Date,
				Slot:        window,
				SlotType:    category,
				Status:      models.AssignmentScheduled,
			})
		}
		groups = append(groups, g)
	}
	return groups, rows
}
