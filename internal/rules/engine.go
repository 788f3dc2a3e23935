// Package rules decides who performs each daily duty. Every function here is
// total: an empty or undersized group yields empty assignees, never a panic.
package rules

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spec-kit/staff-briefing/internal/config"
	"github.com/spec-kit/staff-briefing/internal/domain"
	"github.com/spec-kit/staff-briefing/internal/roster"
)

// RunnerEveryone is shown on the runner line when nobody is set aside.
const RunnerEveryone = "todos"

// Engine applies the site rules to one day's area groups. It holds no state
// between calls.
type Engine struct {
	rules config.Rules
}

// NewEngine builds an engine over the given site rules.
func NewEngine(rules config.Rules) *Engine {
	return &Engine{rules: rules}
}

// Seller is a ranked seller with the tables they cover.
type Seller struct {
	Label string
	Name  string
	// FirstTable and LastTable are zero when the seller has no tables.
	FirstTable int
	LastTable  int
}

func sameName(a, b string) bool {
	return a != "" && strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func findByName(members []domain.AttendanceRecord, name string) (domain.AttendanceRecord, bool) {
	for _, m := range members {
		if sameName(name, m.Name) {
			return m, true
		}
	}
	return domain.AttendanceRecord{}, false
}

// DoorDuty returns the configured door person when present in sala, else the
// sala opener.
func (e *Engine) DoorDuty(sala []domain.AttendanceRecord) string {
	if rec, ok := findByName(sala, e.rules.DoorPerson); ok {
		return rec.Name
	}
	return nameOf(roster.IdentifyRoles(sala).Opener)
}

// BathroomCleaner applies the two-person opener rule.
func (e *Engine) BathroomCleaner(sala []domain.AttendanceRecord) string {
	return bathroomCleaner(newGroup(sala))
}

// BarRestocker applies the three-or-more first-exit rule.
func (e *Engine) BarRestocker(bar []domain.AttendanceRecord) string {
	return barRestocker(newGroup(bar))
}

// Sellers ranks the sala staff other than the door person. When the runner
// person is among them and at least three remain, that person becomes the
// runner instead of a seller. The runner is RunnerEveryone otherwise, or
// empty when there is nobody to sell.
func (e *Engine) Sellers(sala []domain.AttendanceRecord, door string) ([]Seller, string) {
	pool := make([]domain.AttendanceRecord, 0, len(sala))
	doorRemoved := false
	for _, m := range sala {
		if !doorRemoved && sameName(door, m.Name) {
			doorRemoved = true
			continue
		}
		pool = append(pool, m)
	}
	if len(pool) == 0 {
		return nil, ""
	}

	runner := RunnerEveryone
	if len(pool) >= 3 {
		for i, m := range pool {
			if sameName(e.rules.RunnerPerson, m.Name) {
				runner = m.Name
				pool = append(pool[:i:i], pool[i+1:]...)
				break
			}
		}
	}

	ranked := roster.SortByEntry(pool)
	sellers := make([]Seller, len(ranked))
	for i, m := range ranked {
		sellers[i] = Seller{Label: sellerLabel(i), Name: m.Name}
	}
	assignTables(sellers, e.rules.Tables)
	return sellers, runner
}

// sellerLabel yields A, B, ... Z, AA, AB, ...
func sellerLabel(i int) string {
	label := ""
	for i >= 0 {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
	}
	return label
}

// assignTables splits tables 1..total into contiguous blocks, earlier sellers
// taking the remainder.
func assignTables(sellers []Seller, total int) {
	if total <= 0 || len(sellers) == 0 {
		return
	}
	per := total / len(sellers)
	rem := total % len(sellers)
	next := 1
	for i := range sellers {
		size := per
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		sellers[i].FirstTable = next
		sellers[i].LastTable = next + size - 1
		next += size
	}
}

// CashCloser picks the first cash-priority name working at the bar, falling
// back to the bar's last leaver. The name is returned capitalized.
func (e *Engine) CashCloser(bar []domain.AttendanceRecord) string {
	for _, name := range e.rules.CashPriority {
		if rec, ok := findByName(bar, name); ok {
			return capitalize(rec.Name)
		}
	}
	return capitalize(nameOf(roster.IdentifyRoles(bar).LastExit))
}

func capitalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// HACCPBar returns the bar checklist for the group's size.
func (e *Engine) HACCPBar(bar []domain.AttendanceRecord) []domain.TaskAssignment {
	g := newGroup(bar)
	return g.assign(barHACCPChains[sizeBucket(g.size())])
}

// HACCPSala returns the sala checklist for the group's size.
func (e *Engine) HACCPSala(sala []domain.AttendanceRecord) []domain.TaskAssignment {
	g := newGroup(sala)
	return g.assign(salaHACCPChains[sizeBucket(g.size())])
}

// SalaTasks is the fixed daily sala list. An empty group has no tasks.
func (e *Engine) SalaTasks(sala []domain.AttendanceRecord) []domain.TaskAssignment {
	if len(sala) == 0 {
		return []domain.TaskAssignment{}
	}
	return newGroup(sala).assign(salaTasks)
}

// BarTasks is the fixed daily bar list. An empty group has no tasks.
func (e *Engine) BarTasks(bar []domain.AttendanceRecord) []domain.TaskAssignment {
	if len(bar) == 0 {
		return []domain.TaskAssignment{}
	}
	g := newGroup(bar)
	return []domain.TaskAssignment{
		{Task: TaskBarPrep, Assignee: g.resolve(RankOpener)},
		{Task: TaskBarRestock, Assignee: barRestocker(g)},
		{Task: TaskBarMachines, Assignee: g.resolve(RankLastExit)},
		{Task: TaskBarClose, Assignee: g.resolve(RankLastExit)},
	}
}

// Assign produces the per-area task lists for date.
func (e *Engine) Assign(date string, groups domain.AreaGroups) domain.DayAssignments {
	return domain.DayAssignments{
		Date: date,
		Sala: e.SalaTasks(groups.Sala),
		Bar:  e.BarTasks(groups.Bar),
	}
}

// Build produces the ordered briefing document for date.
func (e *Engine) Build(date string, groups domain.AreaGroups) domain.Briefing {
	sala := newGroup(groups.Sala)
	bar := newGroup(groups.Bar)

	door := e.DoorDuty(groups.Sala)
	sellers, runner := e.Sellers(groups.Sala, door)

	sellerLines := make([]domain.Line, 0, len(sellers))
	for _, s := range sellers {
		sellerLines = append(sellerLines, domain.Line{
			Label:    "Vendedor " + s.Label,
			Assignee: s.Name,
			Note:     tableNote(s),
		})
	}

	return domain.Briefing{
		Date: date,
		Sections: []domain.Section{
			{
				Kind:  domain.SectionDoor,
				Lines: []domain.Line{{Label: "Porta", Assignee: door}},
			},
			{
				Kind:   domain.SectionBar,
				Header: "BAR",
				Lines: []domain.Line{
					{Label: TaskBarPrep, Assignee: bar.resolve(RankOpener)},
					{Label: TaskBarRestock, Assignee: barRestocker(bar)},
					{Label: TaskBarClose, Assignee: bar.resolve(RankLastExit)},
				},
			},
			{
				Kind:   domain.SectionSellers,
				Header: "VENDEDORES",
				Lines:  sellerLines,
			},
			{
				Kind:  domain.SectionRunner,
				Lines: []domain.Line{{Label: "Runner", Assignee: runner}},
			},
			{
				Kind:   domain.SectionHACCPBar,
				Header: "HACCP BAR",
				Lines:  toLines(bar.assign(barHACCPChains[sizeBucket(bar.size())])),
			},
			{
				Kind:   domain.SectionHACCPSala,
				Header: "HACCP SALA",
				Lines:  toLines(sala.assign(salaHACCPChains[sizeBucket(sala.size())])),
			},
			{
				Kind:  domain.SectionCash,
				Lines: []domain.Line{{Label: "Fecho de caixa", Assignee: e.CashCloser(groups.Bar)}},
			},
		},
		Flagged: groups.Flagged,
	}
}

func toLines(tasks []domain.TaskAssignment) []domain.Line {
	lines := make([]domain.Line, len(tasks))
	for i, t := range tasks {
		lines[i] = domain.Line{Label: t.Task, Assignee: t.Assignee}
	}
	return lines
}

func tableNote(s Seller) string {
	switch {
	case s.FirstTable == 0:
		return ""
	case s.FirstTable == s.LastTable:
		return fmt.Sprintf("mesa %d", s.FirstTable)
	default:
		return fmt.Sprintf("mesas %d–%d", s.FirstTable, s.LastTable)
	}
}
