// Package render formats a briefing document as the text read out to staff.
package render

import (
	"strings"

	"github.com/spec-kit/staff-briefing/internal/domain"
)

const (
	titleRule   = "=============================="
	sectionRule = "------------------------------"
)

var flagText = map[domain.FlagReason]string{
	domain.FlagAmbiguousArea:  "área ambígua",
	domain.FlagUnassignedArea: "sem área",
}

// TextRenderer writes briefings in the fixed narrative layout. Unresolved
// assignees and empty sections print Placeholder.
type TextRenderer struct {
	Placeholder string
}

// NewTextRenderer returns a renderer using placeholder for blanks.
func NewTextRenderer(placeholder string) *TextRenderer {
	if placeholder == "" {
		placeholder = "____"
	}
	return &TextRenderer{Placeholder: placeholder}
}

// Render formats b. It never fails; missing data becomes placeholders.
func (r *TextRenderer) Render(b domain.Briefing) string {
	var sb strings.Builder
	sb.WriteString("BRIEFING " + b.Date + "\n")
	sb.WriteString(titleRule + "\n")

	for i, section := range b.Sections {
		if i > 0 && section.Header != "" {
			sb.WriteString(sectionRule + "\n")
		}
		if section.Header != "" {
			sb.WriteString(section.Header + "\n")
		}
		if len(section.Lines) == 0 {
			sb.WriteString(r.Placeholder + "\n")
			continue
		}
		for _, line := range section.Lines {
			r.writeLine(&sb, line)
		}
	}

	if len(b.Flagged) > 0 {
		sb.WriteString(sectionRule + "\n")
		sb.WriteString("ATENÇÃO\n")
		for _, f := range b.Flagged {
			name := f.Record.Name
			if name == "" {
				name = r.Placeholder
			}
			sb.WriteString(name + " (" + f.Record.Area + "): " + flagText[f.Reason] + "\n")
		}
	}
	sb.WriteString(titleRule + "\n")
	return sb.String()
}

func (r *TextRenderer) writeLine(sb *strings.Builder, line domain.Line) {
	assignee := line.Assignee
	if assignee == "" {
		assignee = r.Placeholder
	}
	sb.WriteString(line.Label + ": " + assignee)
	if line.Note != "" {
		sb.WriteString(" (" + line.Note + ")")
	}
	sb.WriteString("\n")
}
