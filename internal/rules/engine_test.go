package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-briefing/internal/config"
	"github.com/spec-kit/staff-briefing/internal/domain"
	"github.com/spec-kit/staff-briefing/internal/roster"
)

func staff(area, name, entry, exit string) domain.AttendanceRecord {
	return domain.AttendanceRecord{Date: "2024-05-01", Name: name, Area: area, Entry: entry, Exit: exit}
}

func newTestEngine(mutate func(*config.Rules)) *Engine {
	rules := config.DefaultRules()
	if mutate != nil {
		mutate(&rules)
	}
	return NewEngine(rules)
}

func assignees(tasks []domain.TaskAssignment) map[string]string {
	out := make(map[string]string, len(tasks))
	for _, t := range tasks {
		out[t.Task] = t.Assignee
	}
	return out
}

func TestBathroomCleaner(t *testing.T) {
	e := newTestEngine(nil)

	t.Run("two people go to the opener", func(t *testing.T) {
		sala := []domain.AttendanceRecord{
			staff("sala", "Late", "11:00", "15:00"),
			staff("sala", "Early", "09:00", "18:00"),
		}
		require.Equal(t, "Early", e.BathroomCleaner(sala))
	})

	t.Run("three people go to the first exit", func(t *testing.T) {
		sala := []domain.AttendanceRecord{
			staff("sala", "Opener", "08:00", "18:00"),
			staff("sala", "Leaver", "10:00", "14:00"),
			staff("sala", "Closer", "12:00", "23:00"),
		}
		require.Equal(t, "Leaver", e.BathroomCleaner(sala))
	})

	t.Run("manager excluded leaves a single person", func(t *testing.T) {
		records := []domain.AttendanceRecord{
			staff("sala", "Ana", "09:00", "18:00"),
			staff("sala", "Bruno", "10:00", "17:00"),
		}
		working := classifier().WorkingOn(records, "2024-05-01")
		require.Len(t, working, 1)
		require.Equal(t, "Bruno", e.BathroomCleaner(working))
	})

	t.Run("empty group", func(t *testing.T) {
		require.Equal(t, "", e.BathroomCleaner(nil))
	})
}

func classifier() *roster.Classifier {
	rules := config.DefaultRules()
	return roster.NewClassifier(rules.Managers, rules.OffMarkers)
}

func TestBarRestocker(t *testing.T) {
	e := newTestEngine(nil)
	bar := []domain.AttendanceRecord{
		staff("bar", "A", "08:00", "16:00"),
		staff("bar", "B", "08:30", "17:00"),
		staff("bar", "C", "09:00", "18:00"),
	}

	require.Equal(t, "A", e.BarRestocker(bar))

	reordered := []domain.AttendanceRecord{bar[2], bar[1], {Name: "D", Entry: "07:00", Exit: "20:00"}}
	require.Equal(t, "B", e.BarRestocker(reordered), "first exit, not opener, with three or more")

	require.Equal(t, "B", e.BarRestocker(bar[1:]), "opener with two")
	require.Equal(t, "C", e.BarRestocker(bar[2:]), "opener with one")
	require.Equal(t, "", e.BarRestocker(nil))
}

func TestDoorDuty(t *testing.T) {
	sala := []domain.AttendanceRecord{
		staff("sala", "Bruno", "10:00", "17:00"),
		staff("sala", "Carla", "09:00", "18:00"),
	}

	t.Run("configured person present", func(t *testing.T) {
		e := newTestEngine(func(r *config.Rules) { r.DoorPerson = "bruno" })
		require.Equal(t, "Bruno", e.DoorDuty(sala))
	})

	t.Run("configured person absent falls back to opener", func(t *testing.T) {
		e := newTestEngine(func(r *config.Rules) { r.DoorPerson = "Zé" })
		require.Equal(t, "Carla", e.DoorDuty(sala))
	})

	t.Run("empty sala", func(t *testing.T) {
		require.Equal(t, "", newTestEngine(nil).DoorDuty(nil))
	})
}

func TestSellers(t *testing.T) {
	sala := []domain.AttendanceRecord{
		staff("sala", "Door", "08:00", "16:00"),
		staff("sala", "Runner", "09:00", "17:00"),
		staff("sala", "Late", "12:00", "22:00"),
		staff("sala", "Mid", "10:00", "19:00"),
	}

	t.Run("runner removed when three remain", func(t *testing.T) {
		e := newTestEngine(func(r *config.Rules) {
			r.RunnerPerson = "Runner"
			r.Tables = 20
		})
		sellers, runner := e.Sellers(sala, "Door")
		require.Equal(t, "Runner", runner)
		require.Len(t, sellers, 2)
		require.Equal(t, Seller{Label: "A", Name: "Mid", FirstTable: 1, LastTable: 10}, sellers[0])
		require.Equal(t, Seller{Label: "B", Name: "Late", FirstTable: 11, LastTable: 20}, sellers[1])
	})

	t.Run("runner stays a seller when fewer than three remain", func(t *testing.T) {
		e := newTestEngine(func(r *config.Rules) { r.RunnerPerson = "Runner" })
		sellers, runner := e.Sellers(sala[:3], "Door")
		require.Equal(t, RunnerEveryone, runner)
		require.Len(t, sellers, 2)
		require.Equal(t, "Runner", sellers[0].Name)
	})

	t.Run("no runner configured", func(t *testing.T) {
		sellers, runner := newTestEngine(nil).Sellers(sala, "Door")
		require.Equal(t, RunnerEveryone, runner)
		require.Len(t, sellers, 3)
		require.Equal(t, []string{"A", "B", "C"}, []string{sellers[0].Label, sellers[1].Label, sellers[2].Label})
	})

	t.Run("uneven tables go to earlier sellers", func(t *testing.T) {
		e := newTestEngine(func(r *config.Rules) { r.Tables = 10 })
		sellers, _ := e.Sellers(sala, "Door")
		require.Equal(t, 1, sellers[0].FirstTable)
		require.Equal(t, 4, sellers[0].LastTable)
		require.Equal(t, 5, sellers[1].FirstTable)
		require.Equal(t, 7, sellers[1].LastTable)
		require.Equal(t, 10, sellers[2].LastTable)
	})

	t.Run("more sellers than tables", func(t *testing.T) {
		e := newTestEngine(func(r *config.Rules) { r.Tables = 2 })
		sellers, _ := e.Sellers(sala, "Door")
		require.Equal(t, 1, sellers[0].LastTable)
		require.Equal(t, 2, sellers[1].FirstTable)
		require.Zero(t, sellers[2].FirstTable)
	})

	t.Run("only the door person", func(t *testing.T) {
		sellers, runner := newTestEngine(nil).Sellers(sala[:1], "Door")
		require.Empty(t, sellers)
		require.Equal(t, "", runner)
	})
}

func TestSellerLabel(t *testing.T) {
	assert.Equal(t, "A", sellerLabel(0))
	assert.Equal(t, "Z", sellerLabel(25))
	assert.Equal(t, "AA", sellerLabel(26))
	assert.Equal(t, "AB", sellerLabel(27))
}

func TestCashCloser(t *testing.T) {
	bar := []domain.AttendanceRecord{
		staff("bar", "joana", "08:00", "16:00"),
		staff("bar", "rui", "10:00", "23:00"),
		staff("bar", "marta", "09:00", "17:00"),
	}

	t.Run("priority wins regardless of exit", func(t *testing.T) {
		e := newTestEngine(func(r *config.Rules) { r.CashPriority = []string{"Paulo", "Marta", "Joana"} })
		require.Equal(t, "Marta", e.CashCloser(bar))
	})

	t.Run("falls back to last exit", func(t *testing.T) {
		e := newTestEngine(func(r *config.Rules) { r.CashPriority = []string{"Paulo"} })
		require.Equal(t, "Rui", e.CashCloser(bar))
	})

	t.Run("empty bar", func(t *testing.T) {
		require.Equal(t, "", newTestEngine(nil).CashCloser(nil))
	})

	t.Run("capitalizes accented names", func(t *testing.T) {
		require.Equal(t, "Érica", capitalize("érica"))
	})
}

func TestHACCPChains(t *testing.T) {
	e := newTestEngine(nil)
	bar := []domain.AttendanceRecord{
		staff("bar", "A", "08:00", "15:00"),
		staff("bar", "B", "09:00", "17:00"),
		staff("bar", "C", "10:00", "23:00"),
		staff("bar", "D", "11:00", "20:00"),
	}

	t.Run("bar sizes", func(t *testing.T) {
		require.Empty(t, e.HACCPBar(nil))

		one := e.HACCPBar(bar[:1])
		require.Len(t, one, 2)
		require.Equal(t, map[string]string{TaskBarMachines: "A", TaskBarClose: "A"}, assignees(one))

		two := e.HACCPBar(bar[:2])
		require.Len(t, two, 4)
		require.Equal(t, "A", assignees(two)[TaskBarFridges])
		require.Equal(t, "B", assignees(two)[TaskBarClose])

		four := e.HACCPBar(bar)
		require.Len(t, four, 5)
		got := assignees(four)
		require.Equal(t, "A", got[TaskBarFridges])
		require.Equal(t, "B", got[TaskBarDishes])
		require.Equal(t, "B", got[TaskBarCounter])
		require.Equal(t, "C", got[TaskBarClose])
	})

	t.Run("sala sizes", func(t *testing.T) {
		sala := bar
		require.Empty(t, e.HACCPSala(nil))

		one := e.HACCPSala(sala[:1])
		require.Len(t, one, 3)
		require.Equal(t, "A", assignees(one)[TaskBathroom])

		two := assignees(e.HACCPSala(sala[1:3]))
		require.Equal(t, "B", two[TaskUpperRoomClose])
		require.Equal(t, "B", two[TaskBathroom])
		require.Equal(t, "C", two[TaskSalaClose])

		three := e.HACCPSala(sala)
		require.Len(t, three, 6)
		got := assignees(three)
		require.Equal(t, "A", got[TaskUpperRoomClose])
		require.Equal(t, "B", got[TaskSideboard])
		require.Equal(t, "A", got[TaskBathroom])
		require.Equal(t, "C", got[TaskSalaClose])
	})
}

func TestAreaTaskLists(t *testing.T) {
	e := newTestEngine(nil)

	require.Empty(t, e.SalaTasks(nil))
	require.Empty(t, e.BarTasks(nil))

	sala := []domain.AttendanceRecord{
		staff("sala", "Opener", "08:00", "18:00"),
		staff("sala", "Closer", "10:00", "23:00"),
	}
	tasks := e.SalaTasks(sala)
	require.Len(t, tasks, 6)
	require.Equal(t, TaskUpperRoomClose, tasks[0].Task)
	require.Equal(t, "Opener", tasks[3].Assignee)
	require.Equal(t, "Closer", tasks[5].Assignee)

	bar := []domain.AttendanceRecord{staff("bar", "Solo", "08:00", "16:00")}
	got := assignees(e.BarTasks(bar))
	require.Equal(t, map[string]string{
		TaskBarPrep:     "Solo",
		TaskBarRestock:  "Solo",
		TaskBarMachines: "Solo",
		TaskBarClose:    "Solo",
	}, got)
}

func TestBuildEmptyDay(t *testing.T) {
	b := newTestEngine(nil).Build("2024-05-01", domain.AreaGroups{})
	require.Equal(t, "2024-05-01", b.Date)

	kinds := make([]domain.SectionKind, len(b.Sections))
	for i, s := range b.Sections {
		kinds[i] = s.Kind
	}
	require.Equal(t, []domain.SectionKind{
		domain.SectionDoor,
		domain.SectionBar,
		domain.SectionSellers,
		domain.SectionRunner,
		domain.SectionHACCPBar,
		domain.SectionHACCPSala,
		domain.SectionCash,
	}, kinds)

	cash, ok := b.Section(domain.SectionCash)
	require.True(t, ok)
	require.Equal(t, "", cash.Lines[0].Assignee)
}

func TestBuildIsStateless(t *testing.T) {
	e := newTestEngine(nil)
	busy := domain.AreaGroups{
		Sala: []domain.AttendanceRecord{staff("sala", "S", "09:00", "17:00")},
		Bar:  []domain.AttendanceRecord{staff("bar", "B", "09:00", "17:00")},
	}
	_ = e.Build("2024-05-01", busy)

	b := e.Build("2024-05-02", domain.AreaGroups{})
	door, _ := b.Section(domain.SectionDoor)
	require.Equal(t, "", door.Lines[0].Assignee)
}
