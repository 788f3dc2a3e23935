package domain

import "time"

// Area enumerates the work areas tasks are split by.
type Area string

const (
	AreaSala Area = "sala"
	AreaBar  Area = "bar"
)

// AttendanceRecord is one roster row. Entry and Exit are raw "HH:MM" text;
// an empty string means the value is absent.
type AttendanceRecord struct {
	Date  string `json:"date"`
	Name  string `json:"name"`
	Area  string `json:"area"`
	Entry string `json:"entry,omitempty"`
	Exit  string `json:"exit,omitempty"`
}

// HasShift reports whether both entry and exit are present.
func (r AttendanceRecord) HasShift() bool {
	return r.Entry != "" && r.Exit != ""
}

// StoredAttendance is an AttendanceRecord persisted by a roster import.
type StoredAttendance struct {
	ID         int64
	BatchID    string
	Position   int
	Record     AttendanceRecord
	ImportedAt time.Time
}

// FlagReason explains why a working record was left out of every area group.
type FlagReason string

const (
	FlagAmbiguousArea  FlagReason = "AMBIGUOUS_AREA"
	FlagUnassignedArea FlagReason = "UNASSIGNED_AREA"
)

// FlaggedRecord is a working record the classifier could not place.
type FlaggedRecord struct {
	Record AttendanceRecord `json:"record"`
	Reason FlagReason       `json:"reason"`
}

// AreaGroups is the partition of one day's working staff.
type AreaGroups struct {
	Sala    []AttendanceRecord
	Bar     []AttendanceRecord
	Flagged []FlaggedRecord
}

// RoleSet holds timing ranks for one area group. Nil members mean the group
// had nobody with parseable times.
type RoleSet struct {
	Opener    *AttendanceRecord
	FirstExit *AttendanceRecord
	LastExit  *AttendanceRecord
	// ByEntry and ByExit are the full rankings, ascending.
	ByEntry []AttendanceRecord
	ByExit  []AttendanceRecord
}

// ExitRank returns the n-th earliest leaver (0-based) or nil when the
// group is too small.
func (r RoleSet) ExitRank(n int) *AttendanceRecord {
	if n < 0 || n >= len(r.ByExit) {
		return nil
	}
	rec := r.ByExit[n]
	return &rec
}
