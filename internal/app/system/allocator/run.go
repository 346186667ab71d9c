// Package allocator builds a schedule from a student roster and a mentor
// roster: PI sessions by randomized draws against the mentor grid, GD
// groups by cyclic assignment, and the per-mentor load report.
//
// Everything here is in memory and synchronous. Callers own persistence.
package allocator

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/google/uuid"
)

var (
	// ErrPrecondition is returned by Generate when it cannot start. Nothing
	// has been allocated when it is returned.
	ErrPrecondition = errors.New("schedule precondition failed")

	// ErrAlreadyGenerated is returned when Generate is called a second time
	// on the same Run. Start a new Run to generate again.
	ErrAlreadyGenerated = errors.New("schedule already generated")
)

// Run is one schedule generation. It owns its inputs, the working grid and
// ledger, and the results. A Run is not safe for concurrent use.
type Run struct {
	ID        string
	Seed      int64
	CreatedAt time.Time

	Catalog  catalog.Catalog
	Students []models.Student
	Mentors  []models.Mentor

	Grid   *Grid
	Ledger *Ledger

	Assignments []models.Assignment
	Groups      []models.GDGroup
	Utilization []models.MentorUtilization

	rng  Source
	done bool
}

// New prepares a run over the given rosters. Rosters must already be in
// list order.
func New(students []models.Student, mentors []models.Mentor, cat catalog.Catalog, rng Source) *Run {
	return &Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Catalog:   cat,
		Students:  students,
		Mentors:   mentors,
		rng:       rng,
	}
}

// NewSeeded is New with a math/rand source, recording the seed on the run.
func NewSeeded(students []models.Student, mentors []models.Mentor, cat catalog.Catalog, seed int64) *Run {
	r := New(students, mentors, cat, NewSource(seed))
	r.Seed = seed
	return r
}

// Generate builds the grid, books PI sessions, forms GD groups and computes
// utilization. It either fails before touching anything or runs to the end.
func (r *Run) Generate() error {
	if r.done {
		return ErrAlreadyGenerated
	}
	switch {
	case len(r.Students) == 0:
		return fmt.Errorf("%w: no students uploaded", ErrPrecondition)
	case len(r.Mentors) == 0:
		return fmt.Errorf("%w: no mentors uploaded", ErrPrecondition)
	case r.rng == nil:
		return fmt.Errorf("%w: no random source", ErrPrecondition)
	}
	if err := r.Catalog.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrPrecondition, err)
	}
	r.done = true

	r.Grid = BuildGrid(r.Mentors)
	r.Ledger = NewLedger()

	pi := AllocatePI(r.Students, r.Mentors, r.Catalog, r.Grid, r.Ledger, r.rng, piCounter())
	groups, gd := GroupGD(r.Students, r.Mentors, r.Catalog, r.rng)

	r.Assignments = make([]models.Assignment, 0, len(pi)+len(gd))
	r.Assignments = append(r.Assignments, pi...)
	r.Assignments = append(r.Assignments, gd...)
	for i := range r.Assignments {
		r.Assignments[i].RunID = r.ID
		r.Assignments[i].Seq = i
	}
	for i := range groups {
		groups[i].RunID = r.ID
	}
	r.Groups = groups
	r.Utilization = Utilization(r.Assignments, r.Mentors)
	return nil
}

// Record returns the persisted summary of a generated run.
func (r *Run) Record() models.ScheduleRun {
	var cells, booked int
	if r.Grid != nil {
		cells, booked = r.Grid.Capacity(), r.Grid.Occupied()
	}
	return models.ScheduleRun{
		ID:                 r.ID,
		Seed:               r.Seed,
		StudentCount:       len(r.Students),
		MentorCount:        len(r.Mentors),
		PICount:            countType(r.Assignments, models.SessionPI),
		GDGroupCount:       len(r.Groups),
		ShortfallCount:     len(Shortfall(r.Students, r.Assignments)),
		CrossConflictCount: len(CrossConflicts(r.Assignments)),
		GridCells:          cells,
		GridBooked:         booked,
		CreatedAt:          r.CreatedAt,
	}
}

func countType(as []models.Assignment, typ string) int {
	n := 0
	for _, a := range as {
		if a.Type == typ {
			n++
		}
	}
	return n
}
