// internal/domain/models/assignment.go
package models

// Session types.
const (
	SessionPI = "PI"
	SessionGD = "GD"
)

// AssignmentScheduled is the status every assignment is created with.
const AssignmentScheduled = "scheduled"

// Assignment is one student/mentor session row produced by a schedule run.
//
// NOTE:
//   - PI ids come from a run-wide counter ("ASSIGN-1", "ASSIGN-2", ...).
//     GD ids are "ASSIGN-GD-<groupIndex>-<studentID>". Export and edit-by-id
//     key off these literal strings.
//   - PINumber is set only for PI rows, GDGroupID only for GD rows.
//   - ZoomLink is the only field edited after creation.
type Assignment struct {
	ID          string `bson:"_id" json:"id"`
	RunID       string `bson:"run_id" json:"run_id"`
	Seq         int    `bson:"seq" json:"seq"`
	StudentID   string `bson:"student_id" json:"student_id"`
	StudentName string `bson:"student_name" json:"student_name"`
	MentorID    string `bson:"mentor_id" json:"mentor_id"`
	MentorName  string `bson:"mentor_name" json:"mentor_name"`
	Type        string `bson:"type" json:"type"` // PI | GD
	PINumber    int    `bson:"pi_number,omitempty" json:"pi_number,omitempty"`
	GDGroupID   string `bson:"gd_group_id,omitempty" json:"gd_group_id,omitempty"`
	Date        string `bson:"date" json:"date"`
	Slot        string `bson:"slot" json:"slot"`
	SlotType    string `bson:"slot_type" json:"slot_type"`
	ZoomLink    string `bson:"zoom_link" json:"zoom_link"`
	Status      string `bson:"status" json:"status"`
}
