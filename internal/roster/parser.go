// Package roster turns attendance exports into records and ranks the staff
// working on a given day.
package roster

import (
	"errors"
	"strings"

	"github.com/spec-kit/staff-briefing/internal/domain"
)

// ErrEmptyInput is returned when the export has no header row.
var ErrEmptyInput = errors.New("roster: no rows in input")

// ParseRows splits delimited text into trimmed fields. Both ',' and ';'
// separate fields, '"' toggles quoting and '""' inside quotes is a literal
// quote. Rows whose fields are all empty are dropped.
func ParseRows(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
	)
	text = strings.TrimPrefix(text, "\ufeff")

	flushCell := func() {
		row = append(row, strings.TrimSpace(cell.String()))
		cell.Reset()
	}
	flushRow := func() {
		flushCell()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"' && inQuotes && i+1 < len(text) && text[i+1] == '"':
			cell.WriteByte('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case (c == ',' || c == ';') && !inQuotes:
			flushCell()
		case c == '\n' && !inQuotes:
			flushRow()
		default:
			cell.WriteByte(c)
		}
	}
	if cell.Len() > 0 || len(row) > 0 {
		flushRow()
	}

	kept := rows[:0]
	for _, r := range rows {
		if !blankRow(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

func blankRow(row []string) bool {
	for _, f := range row {
		if f != "" {
			return false
		}
	}
	return true
}

// FormatRow serializes fields so that ParseRows reads them back unchanged.
func FormatRow(fields []string) string {
	out := make([]string, len(fields))
	for i, f := range fields {
		if strings.ContainsAny(f, ",;\"\n\r") {
			f = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		out[i] = f
	}
	return strings.Join(out, ",")
}

var headerAliases = map[string]string{
	"date":    "date",
	"data":    "date",
	"name":    "name",
	"nome":    "name",
	"area":    "area",
	"área":    "area",
	"entry":   "entry",
	"entrada": "entry",
	"exit":    "exit",
	"saída":   "exit",
	"saida":   "exit",
}

type columns struct {
	date, name, area, entry, exit int
}

func mapHeader(header []string) columns {
	cols := columns{date: -1, name: -1, area: -1, entry: -1, exit: -1}
	for i, h := range header {
		field, ok := headerAliases[strings.ToLower(h)]
		if !ok {
			continue
		}
		// first matching column wins
		switch field {
		case "date":
			if cols.date < 0 {
				cols.date = i
			}
		case "name":
			if cols.name < 0 {
				cols.name = i
			}
		case "area":
			if cols.area < 0 {
				cols.area = i
			}
		case "entry":
			if cols.entry < 0 {
				cols.entry = i
			}
		case "exit":
			if cols.exit < 0 {
				cols.exit = i
			}
		}
	}
	return cols
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ToRecords maps parsed rows onto attendance records using the first row as
// header. Columns missing from the header leave that field empty.
func ToRecords(rows [][]string) ([]domain.AttendanceRecord, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	cols := mapHeader(rows[0])

	records := make([]domain.AttendanceRecord, 0, len(rows)-1)
	for _, r := range rows[1:] {
		records = append(records, domain.AttendanceRecord{
			Date:  field(r, cols.date),
			Name:  field(r, cols.name),
			Area:  field(r, cols.area),
			Entry: field(r, cols.entry),
			Exit:  field(r, cols.exit),
		})
	}
	return records, nil
}

// Parse is ParseRows followed by ToRecords.
func Parse(text string) ([]domain.AttendanceRecord, error) {
	return ToRecords(ParseRows(text))
}

// MissingColumns lists the canonical fields the header does not provide.
func MissingColumns(header []string) []string {
	cols := mapHeader(header)
	var missing []string
	for _, c := range []struct {
		name string
		idx  int
	}{
		{"date", cols.date},
		{"name", cols.name},
		{"area", cols.area},
		{"entry", cols.entry},
		{"exit", cols.exit},
	} {
		if c.idx < 0 {
			missing = append(missing, c.name)
		}
	}
	return missing
}
