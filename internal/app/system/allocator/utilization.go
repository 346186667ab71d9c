package allocator

import (
	"sort"

	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// Utilization summarises mentor load. Each PI row counts PIMinutes and each
// GD row GDMinutes, so a group of six adds six GD rows to its mentor.
// Results are ordered by minutes, highest first, ties keeping mentor order.
// Rows naming an unknown mentor are ignored.
func Utilization(assignments []models.Assignment, mentors []models.Mentor) []models.MentorUtilization {
	out := make([]models.MentorUtilization, len(mentors))
	pos := make(map[string]int, len(mentors))
	for i, m := range mentors {
		out[i] = models.MentorUtilization{MentorID: m.ID, Name: m.Name}
		if _, dup := pos[m.ID]; !dup {
			pos[m.ID] = i
		}
	}

	for _, a := range assignments {
		i, ok := pos[a.MentorID]
		if !ok {
			continue
		}
		switch a.Type {
		case models.SessionPI:
			out[i].PICount++
			out[i].TotalMinutes += catalog.PIMinutes
		case models.SessionGD:
			out[i].GDCount++
			out[i].TotalMinutes += catalog.GDMinutes
		}
	}

	for i := range out {
		out[i].Hours = decimal.NewFromInt(int64(out[i].TotalMinutes)).Div(sixty).StringFixed(1)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].TotalMinutes > out[b].TotalMinutes
	})
	return out
}
