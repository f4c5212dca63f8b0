package progression

import (
	"time"
)

// Record tracks one user's position in one progression template.
// There is exactly one record per (user, template) pair and it is
// mutated only through the tracker transitions. A record is never
// deleted, only paused or reset.
type Record struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	TemplateID string `json:"templateId"`
	// 1-based index into the template's levels
	CurrentLevel      int       `json:"currentLevel"`
	StartDate         time.Time `json:"startDate"`
	CompletedSessions int       `json:"completedSessions"`
	TotalSessions     int       `json:"totalSessions"`
	WeekInLevel       int       `json:"weekInLevel"`
	IsActive          bool      `json:"isActive"`
	// append-only history of transitions, cleared only by reset
	Notes     []string  `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}
