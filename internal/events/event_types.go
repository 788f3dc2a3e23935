package events

import (
	"time"

	"github.com/spec-kit/staff-briefing/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRosterImported    EventType = "roster_imported"
	EventBriefingGenerated EventType = "briefing_generated"
	EventRecordFlagged     EventType = "record_flagged"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Date      string      `json:"date,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RosterImportedPayload payload.
type RosterImportedPayload struct {
	BatchID string   `json:"batch_id"`
	Records int64    `json:"records"`
	Dates   []string `json:"dates"`
	Missing []string `json:"missing_columns,omitempty"`
}

// BriefingGeneratedPayload payload.
type BriefingGeneratedPayload struct {
	Format     string `json:"format"`
	SalaCount  int    `json:"sala_count"`
	BarCount   int    `json:"bar_count"`
	Unresolved int    `json:"unresolved"`
}

// RecordFlaggedPayload payload.
type RecordFlaggedPayload struct {
	Record domain.AttendanceRecord `json:"record"`
	Reason domain.FlagReason       `json:"reason"`
}
