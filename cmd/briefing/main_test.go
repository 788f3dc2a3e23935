package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-briefing/internal/domain"
	"github.com/spec-kit/staff-briefing/internal/roster"
)

const export = "data;nome;área;entrada;saída\n" +
	"01/05/2024;Bruno;Sala;10:00;17:00\n" +
	"01/05/2024;Carla;Sala;11:00;23:00\n" +
	"01/05/2024;Rita;Bar;08:00;16:00\n" +
	"30/04/2024;Rita;Bar;08:00;16:00\n"

func writeExport(t *testing.T) string {
	t.Helper()
	t.Setenv("ROSTER_CSV_URL", "")
	t.Setenv("ROSTER_CSV_PATH", "")
	t.Setenv("RULES_FILE", "")
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(export), 0o600))
	return path
}

func TestRunListDates(t *testing.T) {
	path := writeExport(t)
	var out, errOut bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"--file", path, "--list-dates"}, &out, &errOut))
	require.Equal(t, "30/04/2024\n01/05/2024\n", out.String())
}

func TestRunText(t *testing.T) {
	path := writeExport(t)
	var out, errOut bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"-f", path, "-d", "01/05/2024"}, &out, &errOut))
	require.True(t, strings.HasPrefix(out.String(), "BRIEFING 01/05/2024\n"))
	require.Contains(t, out.String(), "Porta: Bruno\n")
}

func TestRunJSON(t *testing.T) {
	path := writeExport(t)
	var out, errOut bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"--file", path, "--date", "01/05/2024", "--json"}, &out, &errOut))
	var b domain.Briefing
	require.NoError(t, json.Unmarshal(out.Bytes(), &b))
	cash, ok := b.Section(domain.SectionCash)
	require.True(t, ok)
	require.Equal(t, "Rita", cash.Lines[0].Assignee)
}

func TestRunRulesFile(t *testing.T) {
	path := writeExport(t)
	rules := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rules, []byte("managers: [Bruno]\nplaceholder: \"??\"\n"), 0o600))
	var out, errOut bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"--file", path, "--date", "01/05/2024", "--rules", rules}, &out, &errOut))
	require.Contains(t, out.String(), "Porta: Carla\n")
}

func TestRunErrors(t *testing.T) {
	path := writeExport(t)
	var out, errOut bytes.Buffer

	require.ErrorContains(t, run(context.Background(), []string{"--file", path}, &out, &errOut), "--date is required")
	require.ErrorIs(t, run(context.Background(), []string{"--date", "01/05/2024"}, &out, &errOut), roster.ErrSourceNotConfigured)
	require.ErrorContains(t, run(context.Background(), []string{"--file", path, "extra"}, &out, &errOut), "unexpected argument")
	require.ErrorContains(t, run(context.Background(), []string{"--file", path, "--date", "02/05/2024"}, &out, &errOut), "not found")
	require.Error(t, run(context.Background(), []string{"--no-such-flag"}, &out, &errOut))
}
