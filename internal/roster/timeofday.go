package roster

import (
	"strconv"
	"strings"
)

// maxHour bounds the hour field; anything larger is a typo, not a shift.
const maxHour = 48

// ParseTimeOfDay converts "HH:MM" into minutes since midnight. It reports
// false for empty text, text without ':' and non-numeric parts. Values past
// 24:00 are kept as-is so late closings still rank after earlier ones, up to
// maxHour.
//
// All ranking in this package compares these minute values; raw strings are
// never compared lexically.
func ParseTimeOfDay(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	hh, mm, ok := strings.Cut(text, ":")
	if !ok {
		return 0, false
	}
	// tolerate seconds ("09:30:00")
	mm, _, _ = strings.Cut(mm, ":")

	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil || h < 0 || h > maxHour {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
