// internal/app/system/csvutil/students.go
package csvutil

import (
	"fmt"
	"io"
	"time"

	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

var studentColumns = columns{
	"id":    {"id", "student id"},
	"name":  {"name", "student name"},
	"email": {"email"},
	"phone": {"phone", "contact"},
	"spoc":  {"spoc"},
}

type studentRow struct {
	ID    string `validate:"required,max=64"`
	Name  string `validate:"required,max=200"`
	Email string `validate:"omitempty,email"`
	Phone string `validate:"max=40"`
}

// StudentResult holds the students parsed from an upload.
type StudentResult struct {
	Students []models.Student
	Errors   []RowError
}

// HasErrors returns true if there are any validation errors.
func (r *StudentResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ParseStudentsCSV reads a student roster. The header row is required;
// columns may appear in any order. Blank cells take defaults: id STU%03d
// and name "Student n" from the row position, and a SPOC from the catalog
// in buckets of twelve rows.
//
// The returned students carry Seq in file order and are ready to store.
// Returns ErrTooManyRows if MaxRows is exceeded (when MaxRows > 0).
func ParseStudentsCSV(r io.Reader, cat catalog.Catalog, opts ParseOptions) (StudentResult, error) {
	var result StudentResult

	recs, readErrs, err := readRecords(r, studentColumns, opts)
	if err != nil {
		return result, err
	}
	if len(readErrs) > 0 {
		result.Errors = readErrs
		return result, nil
	}

	now := time.Now().UTC()
	seen := dupTracker{}
	for idx, rec := range recs {
		s := models.Student{
			ID:        rec.get("id"),
			Seq:       idx,
			Name:      rec.get("name"),
			Email:     rec.get("email"),
			Phone:     rec.get("phone"),
			SPOC:      rec.get("spoc"),
			CreatedAt: now,
		}
		if s.ID == "" {
			s.ID = fmt.Sprintf("STU%03d", idx+1)
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("Student %d", idx+1)
		}
		if s.SPOC == "" {
			s.SPOC = cat.SPOCFor(idx)
		}
		s.NameCI = text.Fold(s.Name)

		if err := validate.Struct(studentRow{ID: s.ID, Name: s.Name, Email: s.Email, Phone: s.Phone}); err != nil {
			result.Errors = append(result.Errors, RowError{Line: rec.line, Reason: rowReason(err), Raw: rec.raw})
			continue
		}
		if dup := seen.check(s.ID, rec.line); dup != nil {
			dup.Raw = rec.raw
			result.Errors = append(result.Errors, *dup)
			continue
		}
		result.Students = append(result.Students, s)
	}
	return result, nil
}
