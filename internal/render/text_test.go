package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-briefing/internal/config"
	"github.com/spec-kit/staff-briefing/internal/domain"
	"github.com/spec-kit/staff-briefing/internal/render"
	"github.com/spec-kit/staff-briefing/internal/rules"
)

func rec(area, name, entry, exit string) domain.AttendanceRecord {
	return domain.AttendanceRecord{Date: "2024-05-01", Name: name, Area: area, Entry: entry, Exit: exit}
}

func TestRenderFullDay(t *testing.T) {
	cfg := config.DefaultRules()
	cfg.DoorPerson = "Carla"
	cfg.RunnerPerson = "Diogo"
	cfg.CashPriority = []string{"marta"}
	cfg.Tables = 20

	groups := domain.AreaGroups{
		Sala: []domain.AttendanceRecord{
			rec("Sala", "Carla", "09:00", "17:00"),
			rec("Sala", "Diogo", "10:00", "18:00"),
			rec("Sala", "Eva", "11:00", "23:00"),
			rec("Sala", "Filipe", "12:00", "16:00"),
		},
		Bar: []domain.AttendanceRecord{
			rec("Bar", "marta", "08:00", "16:00"),
			rec("Bar", "Nuno", "10:00", "22:00"),
		},
	}
	briefing := rules.NewEngine(cfg).Build("2024-05-01", groups)
	out := render.NewTextRenderer(cfg.Placeholder).Render(briefing)

	want := `BRIEFING 2024-05-01
==============================
Porta: Carla
------------------------------
BAR
Preparação Bar: marta
Reposições Bar: marta
Fecho Bar: Nuno
------------------------------
VENDEDORES
Vendedor A: Eva (mesas 1–10)
Vendedor B: Filipe (mesas 11–20)
Runner: Diogo
------------------------------
HACCP BAR
Limpeza frigoríficos: marta
Lavagem loiça bar: marta
Limpeza máquinas / leites: Nuno
Fecho Bar: Nuno
------------------------------
HACCP SALA
16:30 Fecho da sala de cima: Filipe
16:30 Limpeza e reposição aparador / cadeira bebés: Carla
16:30 Repor papel (casa de banho): Filipe
17:30 Limpeza casa de banho (clientes e staff): Filipe
17:30 Limpeza vidros e espelhos: Carla
17:30 Fecho da sala: Eva
Fecho de caixa: Marta
==============================
`
	require.Equal(t, want, out)
}

func TestRenderEmptyBarUsesPlaceholders(t *testing.T) {
	groups := domain.AreaGroups{
		Sala: []domain.AttendanceRecord{rec("Sala", "Bruno", "10:00", "17:00")},
	}
	briefing := rules.NewEngine(config.DefaultRules()).Build("2024-05-01", groups)
	out := render.NewTextRenderer("____").Render(briefing)

	require.Contains(t, out, "BAR\nPreparação Bar: ____\nReposições Bar: ____\nFecho Bar: ____\n")
	require.Contains(t, out, "HACCP BAR\n____\n")
	require.Contains(t, out, "Fecho de caixa: ____\n")
	require.Contains(t, out, "Porta: Bruno\n")
	require.Contains(t, out, "VENDEDORES\n____\n")
	require.Contains(t, out, "Runner: ____\n")
}

func TestRenderFlagged(t *testing.T) {
	briefing := domain.Briefing{
		Date: "2024-05-01",
		Flagged: []domain.FlaggedRecord{
			{Record: rec("sala/bar", "Gil", "09:00", "17:00"), Reason: domain.FlagAmbiguousArea},
			{Record: rec("cozinha", "Hugo", "09:00", "17:00"), Reason: domain.FlagUnassignedArea},
		},
	}
	out := render.NewTextRenderer("").Render(briefing)
	require.Contains(t, out, "ATENÇÃO\nGil (sala/bar): área ambígua\nHugo (cozinha): sem área\n")
	require.True(t, strings.HasSuffix(out, "==============================\n"))
}
