// internal/domain/models/gdgroup.go
package models

// Attendance states for a GD member.
const (
	AttendancePending = "pending"
	AttendanceIn      = "in"
	AttendanceOut     = "out"
)

// ValidAttendance reports whether s is one of the attendance states.
func ValidAttendance(s string) bool {
	switch s {
	case AttendancePending, AttendanceIn, AttendanceOut:
		return true
	}
	return false
}

// GDMember is a student inside a discussion group.
type GDMember struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Status string `bson:"status" json:"status"`
}

// GDGroup is a group-discussion session of up to six students.
// Members keep roster order; only their Status changes after creation.
type GDGroup struct {
	ID         string     `bson:"_id" json:"id"`
	RunID      string     `bson:"run_id" json:"run_id"`
	Seq        int        `bson:"seq" json:"seq"`
	Topic      string     `bson:"topic" json:"topic"`
	MentorID   string     `bson:"mentor_id" json:"mentor_id"`
	MentorName string     `bson:"mentor_name" json:"mentor_name"`
	Date       string     `bson:"date" json:"date"`
	Slot       string     `bson:"slot" json:"slot"`
	SlotType   string     `bson:"slot_type" json:"slot_type"`
	Students   []GDMember `bson:"students" json:"students"`
	ZoomLink   string     `bson:"zoom_link" json:"zoom_link"`
}
