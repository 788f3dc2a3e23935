package rules

import (
	"github.com/spec-kit/staff-briefing/internal/domain"
	"github.com/spec-kit/staff-briefing/internal/roster"
)

// Rank names a position in a group's timing order.
type Rank string

const (
	RankOpener     Rank = "opener"
	RankFirstExit  Rank = "first_exit"
	RankSecondExit Rank = "second_exit"
	RankLastExit   Rank = "last_exit"
	// RankBathroom resolves through the bathroom-cleaning rule.
	RankBathroom Rank = "bathroom"
)

// step pairs a task name with the rank that performs it.
type step struct {
	Task string
	Rank Rank
}

// group bundles the members of an area with their precomputed ranking.
type group struct {
	members []domain.AttendanceRecord
	roles   domain.RoleSet
}

func newGroup(members []domain.AttendanceRecord) group {
	return group{members: members, roles: roster.IdentifyRoles(members)}
}

func (g group) size() int { return len(g.members) }

func nameOf(rec *domain.AttendanceRecord) string {
	if rec == nil {
		return ""
	}
	return rec.Name
}

// resolve returns the name at rank, or "" when the group cannot supply it.
func (g group) resolve(rank Rank) string {
	switch rank {
	case RankOpener:
		return nameOf(g.roles.Opener)
	case RankFirstExit:
		return nameOf(g.roles.FirstExit)
	case RankSecondExit:
		return nameOf(g.roles.ExitRank(1))
	case RankLastExit:
		return nameOf(g.roles.LastExit)
	case RankBathroom:
		return bathroomCleaner(g)
	default:
		return ""
	}
}

func (g group) assign(steps []step) []domain.TaskAssignment {
	out := make([]domain.TaskAssignment, 0, len(steps))
	for _, s := range steps {
		out = append(out, domain.TaskAssignment{Task: s.Task, Assignee: g.resolve(s.Rank)})
	}
	return out
}

// bathroomCleaner: a two-person sala has the opener clean, any other size
// the first to leave.
func bathroomCleaner(sala group) string {
	if sala.size() == 2 {
		return nameOf(sala.roles.Opener)
	}
	return nameOf(sala.roles.FirstExit)
}

// barRestocker: three or more at the bar sends the first to leave, fewer
// the opener.
func barRestocker(bar group) string {
	if bar.size() >= 3 {
		return nameOf(bar.roles.FirstExit)
	}
	return nameOf(bar.roles.Opener)
}

// sizeBucket clamps n to the chain table index (0, 1, 2 or 3 for 3+).
func sizeBucket(n int) int {
	if n > 3 {
		return 3
	}
	return n
}
