package allocator

import (
	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/domain/models"
)

// Occupant is what a booked grid cell holds.
type Occupant struct {
	StudentID   string
	SessionType string
}

type dayKey struct {
	mentorID string
	date     string
	category string
}

// Grid is the mentor availability calendar: for each mentor, each of the
// mentor's dates and each slot category, a row of eight cells. A nil cell is
// free. Cells are only ever filled, never released.
type Grid struct {
	rows map[dayKey]*[catalog.SlotsPerCategory]*Occupant
}

// BuildGrid creates a grid with every cell free. Mentors with no dates get
// no rows and can never be matched.
func BuildGrid(mentors []models.Mentor) *Grid {
	g := &Grid{rows: make(map[dayKey]*[catalog.SlotsPerCategory]*Occupant)}
	for _, m := range mentors {
		for _, d := range m.Availability {
			for _, cat := range catalog.Categories() {
				g.rows[dayKey{m.ID, d, cat}] = new([catalog.SlotsPerCategory]*Occupant)
			}
		}
	}
	return g
}

func (g *Grid) row(mentorID, date, category string) *[catalog.SlotsPerCategory]*Occupant {
	return g.rows[dayKey{mentorID, date, category}]
}

// Free reports whether the cell exists and nobody holds it.
func (g *Grid) Free(mentorID, date, category string, idx int) bool {
	r := g.row(mentorID, date, category)
	if r == nil || idx < 0 || idx >= len(r) {
		return false
	}
	return r[idx] == nil
}

// Occupy books a free cell. It returns false, and changes nothing, when the
// cell is absent or already taken.
func (g *Grid) Occupy(mentorID, date, category string, idx int, o Occupant) bool {
	if !g.Free(mentorID, date, category, idx) {
		return false
	}
	g.row(mentorID, date, category)[idx] = &o
	return true
}

// Occupied counts booked cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, r := range g.rows {
		for _, c := range r {
			if c != nil {
				n++
			}
		}
	}
	return n
}

// Capacity counts all cells, booked or free.
func (g *Grid) Capacity() int {
	return len(g.rows) * catalog.SlotsPerCategory
}
