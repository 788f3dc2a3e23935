package roster

import (
	"sort"

	"github.com/spec-kit/staff-briefing/internal/domain"
)

type ranked struct {
	rec     domain.AttendanceRecord
	minutes int
}

// IdentifyRoles ranks a group by entry and exit time. Only members with a
// parseable entry take part; the exit ranking further requires a parseable
// exit. Ties keep input order, so the earliest of equals is the first seen
// and the latest of equals is the last seen.
func IdentifyRoles(group []domain.AttendanceRecord) domain.RoleSet {
	var byEntry, byExit []ranked
	for _, rec := range group {
		entry, ok := ParseTimeOfDay(rec.Entry)
		if !ok {
			continue
		}
		byEntry = append(byEntry, ranked{rec: rec, minutes: entry})
		if exit, ok := ParseTimeOfDay(rec.Exit); ok {
			byExit = append(byExit, ranked{rec: rec, minutes: exit})
		}
	}

	sort.SliceStable(byEntry, func(i, j int) bool { return byEntry[i].minutes < byEntry[j].minutes })
	sort.SliceStable(byExit, func(i, j int) bool { return byExit[i].minutes < byExit[j].minutes })

	roles := domain.RoleSet{
		ByEntry: unrank(byEntry),
		ByExit:  unrank(byExit),
	}
	if len(roles.ByEntry) > 0 {
		opener := roles.ByEntry[0]
		roles.Opener = &opener
	}
	if len(roles.ByExit) > 0 {
		first := roles.ByExit[0]
		last := roles.ByExit[len(roles.ByExit)-1]
		roles.FirstExit = &first
		roles.LastExit = &last
	}
	return roles
}

func unrank(list []ranked) []domain.AttendanceRecord {
	if len(list) == 0 {
		return nil
	}
	out := make([]domain.AttendanceRecord, len(list))
	for i, r := range list {
		out[i] = r.rec
	}
	return out
}

// SortByEntry returns a copy of group ordered by entry time. Members without
// a parseable entry follow in input order.
func SortByEntry(group []domain.AttendanceRecord) []domain.AttendanceRecord {
	roles := IdentifyRoles(group)
	out := append([]domain.AttendanceRecord{}, roles.ByEntry...)
	for _, rec := range group {
		if _, ok := ParseTimeOfDay(rec.Entry); !ok {
			out = append(out, rec)
		}
	}
	return out
}
