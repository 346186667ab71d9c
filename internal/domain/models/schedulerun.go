// internal/domain/models/schedulerun.go
package models

import "time"

// ScheduleRun records one "generate schedule" pass. Only the latest run's
// assignments and groups are kept; generating again replaces them.
type ScheduleRun struct {
	ID                 string    `bson:"_id" json:"id"`
	Seed               int64     `bson:"seed" json:"seed"`
	StudentCount       int       `bson:"student_count" json:"student_count"`
	MentorCount        int       `bson:"mentor_count" json:"mentor_count"`
	PICount            int       `bson:"pi_count" json:"pi_count"`
	GDGroupCount       int       `bson:"gd_group_count" json:"gd_group_count"`
	ShortfallCount     int       `bson:"shortfall_count" json:"shortfall_count"`
	CrossConflictCount int       `bson:"cross_conflict_count" json:"cross_conflict_count"`
	GridCells          int       `bson:"grid_cells" json:"grid_cells"`
	GridBooked         int       `bson:"grid_booked" json:"grid_booked"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}
