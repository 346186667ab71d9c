package allocator

import (
	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/domain/models"
)

// FilterBySPOC returns the students tagged with spoc. An empty spoc matches
// everyone.
func FilterBySPOC(students []models.Student, spoc string) []models.Student {
	if spoc == "" {
		return students
	}
	out := make([]models.Student, 0)
	for _, s := range students {
		if s.SPOC == spoc {
			out = append(out, s)
		}
	}
	return out
}

// StudentSet indexes student ids.
func StudentSet(students []models.Student) map[string]struct{} {
	set := make(map[string]struct{}, len(students))
	for _, s := range students {
		set[s.ID] = struct{}{}
	}
	return set
}

// Filter narrows an assignment list. Zero fields match everything; a nil
// StudentIDs matches every student.
type Filter struct {
	Type       string
	Date       string
	MentorID   string
	StudentIDs map[string]struct{}
}

// FilterAssignments returns the assignments matching f, in order.
func FilterAssignments(as []models.Assignment, f Filter) []models.Assignment {
	out := make([]models.Assignment, 0, len(as))
	for _, a := range as {
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		if f.Date != "" && a.Date != f.Date {
			continue
		}
		if f.MentorID != "" && a.MentorID != f.MentorID {
			continue
		}
		if f.StudentIDs != nil {
			if _, ok := f.StudentIDs[a.StudentID]; !ok {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// DateStat is the per-day overview line.
type DateStat struct {
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
	PI       int    `json:"pi"`
	GDGroups int    `json:"gd_groups"`
}

// DateOverview counts sessions per catalog date. GD groups are counted once
// however many members they have.
func DateOverview(cat catalog.Catalog, as []models.Assignment) []DateStat {
	out := make([]DateStat, 0, len(cat.Dates))
	for _, d := range cat.Dates {
		st := DateStat{Date: d}
		seen := make(map[string]struct{})
		for _, a := range as {
			if a.Date != d {
				continue
			}
			st.Sessions++
			switch a.Type {
			case models.SessionPI:
				st.PI++
			case models.SessionGD:
				if _, ok := seen[a.GDGroupID]; !ok {
					seen[a.GDGroupID] = struct{}{}
					st.GDGroups++
				}
			}
		}
		out = append(out, st)
	}
	return out
}

// Totals is the headline count set.
type Totals struct {
	Students   int `json:"students"`
	Mentors    int `json:"mentors"`
	PISessions int `json:"pi_sessions"`
	GDGroups   int `json:"gd_groups"`
}

// Summary counts the rosters, the PI rows in as and the GD groups.
func Summary(students []models.Student, mentors []models.Mentor, as []models.Assignment, groups []models.GDGroup) Totals {
	return Totals{
		Students:   len(students),
		Mentors:    len(mentors),
		PISessions: countType(as, models.SessionPI),
		GDGroups:   len(groups),
	}
}

// ShortfallEntry is a student who ended with fewer than PITarget PI mentors.
type ShortfallEntry struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	SPOC      string `json:"spoc"`
	PICount   int    `json:"pi_count"`
}

// Shortfall lists under-served students in roster order.
func Shortfall(students []models.Student, as []models.Assignment) []ShortfallEntry {
	counts := make(map[string]int, len(students))
	for _, a := range as {
		if a.Type == models.SessionPI {
			counts[a.StudentID]++
		}
	}
	out := make([]ShortfallEntry, 0)
	for _, s := range students {
		if n := counts[s.ID]; n < catalog.PITarget {
			out = append(out, ShortfallEntry{StudentID: s.ID, Name: s.Name, SPOC: s.SPOC, PICount: n})
		}
	}
	return out
}

// CrossConflict is a mentor holding a PI session and a GD group in the same
// window on the same date.
type CrossConflict struct {
	MentorID       string `json:"mentor_id"`
	MentorName     string `json:"mentor_name"`
	Date           string `json:"date"`
	Slot           string `json:"slot"`
	PIAssignmentID string `json:"pi_assignment_id"`
	GDGroupID      string `json:"gd_group_id"`
}

// CrossConflicts finds PI/GD overlaps for the same mentor. They are
// reported only; GD grouping never avoids them.
func CrossConflicts(as []models.Assignment) []CrossConflict {
	type key struct{ mentor, date, slot string }
	pis := make(map[key][]models.Assignment)
	for _, a := range as {
		if a.Type == models.SessionPI {
			k := key{a.MentorID, a.Date, a.Slot}
			pis[k] = append(pis[k], a)
		}
	}

	out := make([]CrossConflict, 0)
	seen := make(map[string]struct{})
	for _, a := range as {
		if a.Type != models.SessionGD {
			continue
		}
		if _, ok := seen[a.GDGroupID]; ok {
			continue
		}
		seen[a.GDGroupID] = struct{}{}
		for _, p := range pis[key{a.MentorID, a.Date, a.Slot}] {
			out = append(out, CrossConflict{
				MentorID:       a.MentorID,
				MentorName:     a.MentorName,
				Date:           a.Date,
				Slot:           a.Slot,
				PIAssignmentID: p.ID,
				GDGroupID:      a.GDGroupID,
			})
		}
	}
	return out
}
