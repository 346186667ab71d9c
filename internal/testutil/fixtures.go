package testutil

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// Students builds n students STU001..STUn in roster order. SPOC is set only
// when spocs is non-empty, cycling through it.
func Students(n int, spocs ...string) []models.Student {
	out := make([]models.Student, n)
	now := time.Now().UTC()
	for i := range out {
		name := fmt.Sprintf("Student %d", i+1)
		out[i] = models.Student{
			ID:        fmt.Sprintf("STU%03d", i+1),
			Seq:       i,
			Name:      name,
			NameCI:    text.Fold(name),
			CreatedAt: now,
		}
		if len(spocs) > 0 {
			out[i].SPOC = spocs[i%len(spocs)]
		}
	}
	return out
}

// Mentors builds n mentors MEN001..MENn available on the given dates in
// both slot categories.
func Mentors(n int, dates ...string) []models.Mentor {
	out := make([]models.Mentor, n)
	now := time.Now().UTC()
	for i := range out {
		name := fmt.Sprintf("Mentor %d", i+1)
		out[i] = models.Mentor{
			ID:             fmt.Sprintf("MEN%03d", i+1),
			Seq:            i,
			Name:           name,
			NameCI:         text.Fold(name),
			Availability:   append([]string(nil), dates...),
			AvailableSlots: []string{models.SlotAfternoon, models.SlotEvening},
			CreatedAt:      now,
		}
	}
	return out
}

// InsertStudents writes students directly, bypassing the store.
func (f *Fixtures) InsertStudents(ctx context.Context, students []models.Student) {
	f.t.Helper()
	docs := make([]any, len(students))
	for i := range students {
		docs[i] = students[i]
	}
	if len(docs) == 0 {
		return
	}
	if _, err := f.db.Collection("students").InsertMany(ctx, docs); err != nil {
		f.t.Fatalf("failed to insert test students: %v", err)
	}
}

// InsertMentors writes mentors directly, bypassing the store.
func (f *Fixtures) InsertMentors(ctx context.Context, mentors []models.Mentor) {
	f.t.Helper()
	docs := make([]any, len(mentors))
	for i := range mentors {
		docs[i] = mentors[i]
	}
	if len(docs) == 0 {
		return
	}
	if _, err := f.db.Collection("mentors").InsertMany(ctx, docs); err != nil {
		f.t.Fatalf("failed to insert test mentors: %v", err)
	}
}
