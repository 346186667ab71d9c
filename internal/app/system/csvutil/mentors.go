// internal/app/system/csvutil/mentors.go
package csvutil

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

var mentorColumns = columns{
	"id":           {"id", "mentor id"},
	"name":         {"name", "mentor name"},
	"email":        {"email"},
	"phone":        {"phone", "contact"},
	"availability": {"availability"},
	"slots":        {"slots"},
}

type mentorRow struct {
	ID           string   `validate:"required,max=64"`
	Name         string   `validate:"required,max=200"`
	Email        string   `validate:"omitempty,email"`
	Phone        string   `validate:"max=40"`
	Availability []string `validate:"min=1,dive,datetime=2006-01-02"`
	Slots        []string `validate:"min=1,dive,oneof=afternoon evening"`
}

// MentorResult holds the mentors parsed from an upload.
type MentorResult struct {
	Mentors []models.Mentor
	Errors  []RowError
}

// HasErrors returns true if there are any validation errors.
func (r *MentorResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ParseMentorsCSV reads a mentor roster. availability and slots are
// ';'-separated lists. A blank availability means the first two catalog
// dates and a blank slots cell means both categories. Repeated entries in
// a list are dropped, keeping the first.
func ParseMentorsCSV(r io.Reader, cat catalog.Catalog, opts ParseOptions) (MentorResult, error) {
	var result MentorResult

	recs, readErrs, err := readRecords(r, mentorColumns, opts)
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
		m := models.Mentor{
			ID:        rec.get("id"),
			Seq:       idx,
			Name:      rec.get("name"),
			Email:     rec.get("email"),
			Phone:     rec.get("phone"),
			CreatedAt: now,
		}
		if m.ID == "" {
			m.ID = fmt.Sprintf("MEN%03d", idx+1)
		}
		if m.Name == "" {
			m.Name = fmt.Sprintf("Mentor %d", idx+1)
		}
		m.NameCI = text.Fold(m.Name)

		if v := rec.get("availability"); v != "" {
			m.Availability = uniq(splitList(v))
		} else {
			m.Availability = cat.DefaultAvailability()
		}
		if v := rec.get("slots"); v != "" {
			m.AvailableSlots = uniq(splitList(strings.ToLower(v)))
		} else {
			m.AvailableSlots = catalog.Categories()
		}

		row := mentorRow{
			ID: m.ID, Name: m.Name, Email: m.Email, Phone: m.Phone,
			Availability: m.Availability, Slots: m.AvailableSlots,
		}
		if err := validate.Struct(row); err != nil {
			result.Errors = append(result.Errors, RowError{Line: rec.line, Reason: rowReason(err), Raw: rec.raw})
			continue
		}
		if dup := seen.check(m.ID, rec.line); dup != nil {
			dup.Raw = rec.raw
			result.Errors = append(result.Errors, *dup)
			continue
		}
		result.Mentors = append(result.Mentors, m)
	}
	return result, nil
}

func uniq(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
