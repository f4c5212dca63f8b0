package progression

import (
	"fmt"
	"time"

	"github.com/fitpath/fitpath/internal/catalog"
)

// Tracker implements the progression state machine. All transitions
// are pure in-memory mutations of one record, persistence and the
// serialization of concurrent transitions on the same record are the
// caller's concern.
type Tracker struct {
	now func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		now: time.Now,
	}
}

// NewTrackerWithClock is used by tests to pin the note timestamps.
func NewTrackerWithClock(now func() time.Time) *Tracker {
	return &Tracker{
		now: now,
	}
}

// NewRecord creates a record at the template's first level. Whether a
// record for this (user, template) pair already exists is a policy
// decision of the caller, not enforced here.
func (t *Tracker) NewRecord(userID string, template catalog.ProgressionTemplate) *Record {
	now := t.now().UTC()
	return &Record{
		UserID:       userID,
		TemplateID:   template.ID,
		CurrentLevel: 1,
		StartDate:    now,
		WeekInLevel:  1,
		IsActive:     true,
		Notes:        []string{},
		CreatedAt:    now,
	}
}

// NewRecordAt creates a record seeded at the given level, clamped into
// [1, len(levels)]. Used when an assessment suggests skipping the
// early levels.
func (t *Tracker) NewRecordAt(userID string, template catalog.ProgressionTemplate, level int) *Record {
	record := t.NewRecord(userID, template)
	if level > len(template.Levels) {
		level = len(template.Levels)
	}
	// lower clamp goes last so a template with no levels still yields
	// level 1
	if level < 1 {
		level = 1
	}
	record.CurrentLevel = level
	return record
}

// CanAdvance reports whether the record is below the template's last
// level. Callers should check it before offering the transition, the
// transition itself is a silent no-op at the boundary.
func CanAdvance(record *Record, template catalog.ProgressionTemplate) bool {
	return record.CurrentLevel < len(template.Levels)
}

// CanRegress reports whether the record is above the first level.
func CanRegress(record *Record) bool {
	return record.CurrentLevel > 1
}

// Advance moves the record up one level and resets the in-level
// counters. At the last level it is a no-op and returns false.
func (t *Tracker) Advance(record *Record, template catalog.ProgressionTemplate) bool {
	if !CanAdvance(record, template) {
		return false
	}
	record.CurrentLevel++
	t.resetCounters(record)
	t.appendNote(record, fmt.Sprintf("advanced to level %d (%s)",
		record.CurrentLevel, template.Levels[record.CurrentLevel-1].Name))
	return true
}

// Regress moves the record down one level and resets the in-level
// counters. At level 1 it is a no-op and returns false.
func (t *Tracker) Regress(record *Record, template catalog.ProgressionTemplate) bool {
	if !CanRegress(record) {
		return false
	}
	record.CurrentLevel--
	t.resetCounters(record)
	t.appendNote(record, fmt.Sprintf("regressed to level %d (%s)",
		record.CurrentLevel, template.Levels[record.CurrentLevel-1].Name))
	return true
}

func (t *Tracker) Pause(record *Record) {
	record.IsActive = false
}

func (t *Tracker) Resume(record *Record) {
	record.IsActive = true
}

// Reset returns the record to level 1 and discards the notes history.
// This is the only transition that erases history instead of
// appending to it.
func (t *Tracker) Reset(record *Record) {
	record.CurrentLevel = 1
	t.resetCounters(record)
	record.Notes = []string{}
}

// Progress is the share of the template already worked through, in
// percent. Levels strictly before the current one count fully, the
// current level counts its elapsed weeks.
func Progress(record *Record, template catalog.ProgressionTemplate) float64 {
	if template.TotalWeeks == 0 {
		return 0
	}

	var completedWeeks int
	for i := 0; i < record.CurrentLevel-1 && i < len(template.Levels); i++ {
		completedWeeks += template.Levels[i].TargetWeeks
	}
	return float64(completedWeeks+record.WeekInLevel-1) / float64(template.TotalWeeks) * 100
}

func (t *Tracker) resetCounters(record *Record) {
	record.WeekInLevel = 1
	record.CompletedSessions = 0
	record.TotalSessions = 0
}

func (t *Tracker) appendNote(record *Record, note string) {
	record.Notes = append(record.Notes, fmt.Sprintf("%s: %s", t.now().UTC().Format(time.RFC3339), note))
}
