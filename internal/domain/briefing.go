package domain

// TaskAssignment maps a named duty to whoever performs it. Assignee is empty
// when no one in the group can be resolved.
type TaskAssignment struct {
	Task     string `json:"task"`
	Assignee string `json:"assignee,omitempty"`
}

// Resolved reports whether the task has an assignee.
func (t TaskAssignment) Resolved() bool {
	return t.Assignee != ""
}

// DayAssignments is the structured per-area result for one date.
type DayAssignments struct {
	Date string           `json:"date"`
	Sala []TaskAssignment `json:"sala"`
	Bar  []TaskAssignment `json:"bar"`
}

// SectionKind identifies a block of the briefing document.
type SectionKind string

const (
	SectionDoor      SectionKind = "door"
	SectionBar       SectionKind = "bar"
	SectionSellers   SectionKind = "sellers"
	SectionRunner    SectionKind = "runner"
	SectionHACCPBar  SectionKind = "haccp_bar"
	SectionHACCPSala SectionKind = "haccp_sala"
	SectionCash      SectionKind = "cash"
)

// Line is a single "label: assignee" entry. Note carries extra text such as
// a table range.
type Line struct {
	Label    string `json:"label"`
	Assignee string `json:"assignee,omitempty"`
	Note     string `json:"note,omitempty"`
}

// Section is one ordered block of the briefing.
type Section struct {
	Kind   SectionKind `json:"kind"`
	Header string      `json:"header,omitempty"`
	Lines  []Line      `json:"lines"`
}

// Briefing is the structured daily document produced by the rule engine and
// consumed by the renderer.
type Briefing struct {
	Date     string          `json:"date"`
	Sections []Section       `json:"sections"`
	Flagged  []FlaggedRecord `json:"flagged,omitempty"`
}

// Section returns the section of the given kind, if present.
func (b Briefing) Section(kind SectionKind) (Section, bool) {
	for _, s := range b.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}
