// internal/domain/models/utilization.go
package models

// MentorUtilization is the per-mentor load summary for a run.
// Hours is TotalMinutes/60 formatted with one decimal place.
type MentorUtilization struct {
	MentorID     string `json:"mentor_id"`
	Name         string `json:"name"`
	PICount      int    `json:"pi_count"`
	GDCount      int    `json:"gd_count"`
	TotalMinutes int    `json:"total_minutes"`
	Hours        string `json:"hours"`
}
