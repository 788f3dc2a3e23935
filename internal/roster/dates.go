package roster

import (
	"sort"
	"time"

	"github.com/spec-kit/staff-briefing/internal/domain"
)

var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// AvailableDates returns the distinct non-empty dates in records. When every
// date parses with the same known layout they are ordered chronologically,
// otherwise lexically.
func AvailableDates(records []domain.AttendanceRecord) []string {
	seen := make(map[string]struct{})
	dates := make([]string, 0)
	for _, rec := range records {
		if rec.Date == "" {
			continue
		}
		if _, ok := seen[rec.Date]; ok {
			continue
		}
		seen[rec.Date] = struct{}{}
		dates = append(dates, rec.Date)
	}

	if parsed, ok := parseAll(dates); ok {
		sort.SliceStable(dates, func(i, j int) bool { return parsed[dates[i]].Before(parsed[dates[j]]) })
		return dates
	}
	sort.Strings(dates)
	return dates
}

func parseAll(dates []string) (map[string]time.Time, bool) {
	if len(dates) == 0 {
		return nil, false
	}
	for _, layout := range dateLayouts {
		parsed := make(map[string]time.Time, len(dates))
		ok := true
		for _, d := range dates {
			t, err := time.Parse(layout, d)
			if err != nil {
				ok = false
				break
			}
			parsed[d] = t
		}
		if ok {
			return parsed, true
		}
	}
	return nil, false
}
