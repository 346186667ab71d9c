// internal/domain/models/mentor.go
package models

import "time"

// Slot categories a mentor can offer.
const (
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// Mentor is one row of the uploaded mentor roster.
//
// Availability holds ISO dates (YYYY-MM-DD) and AvailableSlots holds slot
// categories. Both keep the order they had in the upload because the PI
// engine draws from them by index.
type Mentor struct {
	ID             string   `bson:"_id" json:"id"`
	Seq            int      `bson:"seq" json:"seq"`
	Name           string   `bson:"name" json:"name"`
	NameCI         string   `bson:"name_ci" json:"-"`
	Email          string   `bson:"email" json:"email"`
	Phone          string   `bson:"phone" json:"phone"`
	Availability   []string `bson:"availability" json:"availability"`
	AvailableSlots []string `bson:"available_slots" json:"available_slots"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
