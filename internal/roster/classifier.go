package roster

import (
	"strings"

	"github.com/spec-kit/staff-briefing/internal/domain"
)

// Classifier decides who counts as working and which area they belong to.
type Classifier struct {
	managers   map[string]struct{}
	offMarkers []string
}

// NewClassifier builds a classifier. Manager names match case-insensitively;
// offMarkers are matched as case-insensitive substrings of the entry field.
func NewClassifier(managers, offMarkers []string) *Classifier {
	c := &Classifier{managers: make(map[string]struct{}, len(managers))}
	for _, m := range managers {
		if key := normalizeName(m); key != "" {
			c.managers[key] = struct{}{}
		}
	}
	for _, marker := range offMarkers {
		if marker = strings.ToLower(strings.TrimSpace(marker)); marker != "" {
			c.offMarkers = append(c.offMarkers, marker)
		}
	}
	return c
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsManager reports whether name is on the exclusion list.
func (c *Classifier) IsManager(name string) bool {
	_, ok := c.managers[normalizeName(name)]
	return ok
}

// IsWorking is true when entry and exit are both present, entry is not an
// off-duty marker and the person is not a manager.
func (c *Classifier) IsWorking(rec domain.AttendanceRecord) bool {
	if !rec.HasShift() {
		return false
	}
	entry := strings.ToLower(rec.Entry)
	for _, marker := range c.offMarkers {
		if strings.Contains(entry, marker) {
			return false
		}
	}
	return !c.IsManager(rec.Name)
}

// WorkingOn returns the working records for date, in input order.
func (c *Classifier) WorkingOn(records []domain.AttendanceRecord, date string) []domain.AttendanceRecord {
	var out []domain.AttendanceRecord
	for _, rec := range records {
		if rec.Date == date && c.IsWorking(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// PartitionByArea splits records into sala and bar by case-insensitive
// substring match on the area. A record matching both or neither is kept out
// of both groups and reported in Flagged.
func PartitionByArea(records []domain.AttendanceRecord) domain.AreaGroups {
	var groups domain.AreaGroups
	for _, rec := range records {
		area := strings.ToLower(rec.Area)
		isSala := strings.Contains(area, string(domain.AreaSala))
		isBar := strings.Contains(area, string(domain.AreaBar))
		switch {
		case isSala && isBar:
			groups.Flagged = append(groups.Flagged, domain.FlaggedRecord{Record: rec, Reason: domain.FlagAmbiguousArea})
		case isSala:
			groups.Sala = append(groups.Sala, rec)
		case isBar:
			groups.Bar = append(groups.Bar, rec)
		default:
			groups.Flagged = append(groups.Flagged, domain.FlaggedRecord{Record: rec, Reason: domain.FlagUnassignedArea})
		}
	}
	return groups
}
