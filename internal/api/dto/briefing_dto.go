package dto

import "github.com/spec-kit/staff-briefing/internal/domain"

// DatesResponse lists the roster dates.
type DatesResponse struct {
	Dates []string `json:"dates"`
}

// BriefingResponse wraps the structured briefing with its rendered text.
type BriefingResponse struct {
	Briefing domain.Briefing `json:"briefing"`
	Text     string          `json:"text,omitempty"`
}

// StoredRecordResponse is one imported roster row.
type StoredRecordResponse struct {
	BatchID  string `json:"batch_id"`
	Position int    `json:"position"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	Area     string `json:"area"`
	Entry    string `json:"entry"`
	Exit     string `json:"exit"`
}

// NewStoredRecordResponses maps stored rows to their API shape.
func NewStoredRecordResponses(rows []domain.StoredAttendance) []StoredRecordResponse {
	out := make([]StoredRecordResponse, len(rows))
	for i, r := range rows {
		out[i] = StoredRecordResponse{
			BatchID:  r.BatchID,
			Position: r.Position,
			Date:     r.Record.Date,
			Name:     r.Record.Name,
			Area:     r.Record.Area,
			Entry:    r.Record.Entry,
			Exit:     r.Record.Exit,
		}
	}
	return out
}
