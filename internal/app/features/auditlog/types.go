// internal/app/features/auditlog/types.go
package auditlog

import "github.com/dalemusser/mentorhub/internal/app/store/audit"

// listResponse is the JSON body of GET /audit.
type listResponse struct {
	Events     []audit.Event `json:"events"`
	Category   string        `json:"category,omitempty"`
	EventType  string        `json:"event_type,omitempty"`
	RunID      string        `json:"run_id,omitempty"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Total      int64         `json:"total"`
}

// categoryOption represents a category for the filter dropdown.
type categoryOption struct {
	Value      string   `json:"value"`
	Label      string   `json:"label"`
	EventTypes []string `json:"event_types"`
}

// allCategories returns the available categories for filtering.
func allCategories() []categoryOption {
	return []categoryOption{
		{Value: audit.CategoryRoster, Label: "Rosters", EventTypes: eventTypesForCategory(audit.CategoryRoster)},
		{Value: audit.CategorySchedule, Label: "Schedule", EventTypes: eventTypesForCategory(audit.CategorySchedule)},
		{Value: audit.CategorySecurity, Label: "Security", EventTypes: eventTypesForCategory(audit.CategorySecurity)},
	}
}

// eventTypesForCategory returns the event types for a given category.
// If category is empty, returns all event types.
func eventTypesForCategory(category string) []string {
	rosterEvents := []string{
		audit.EventStudentsUploaded,
		audit.EventStudentsUploadRejected,
		audit.EventMentorsUploaded,
		audit.EventMentorsUploadRejected,
	}
	scheduleEvents := []string{
		audit.EventScheduleGenerated,
		audit.EventScheduleGenerateRejected,
		audit.EventLinkUpdated,
		audit.EventAttendanceUpdated,
	}
	securityEvents := []string{
		audit.EventAdminKeyRejected,
	}

	switch category {
	case audit.CategoryRoster:
		return rosterEvents
	case audit.CategorySchedule:
		return scheduleEvents
	case audit.CategorySecurity:
		return securityEvents
	case "":
		all := make([]string, 0, len(rosterEvents)+len(scheduleEvents)+len(securityEvents))
		all = append(all, rosterEvents...)
		all = append(all, scheduleEvents...)
		all = append(all, securityEvents...)
		return all
	default:
		return nil
	}
}

func knownCategory(c string) bool {
	return c == "" || eventTypesForCategory(c) != nil
}
