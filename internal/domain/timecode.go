package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSeconds converts a fractional-seconds value, as Rekordbox exports
// it in marker Start/End attributes, into an MM:SS.mmm display string.
// The fractional part is copied verbatim from the raw string, so the
// output never carries more precision than the export does; values
// without a fractional part get ".000". Minutes grow past two digits
// when needed.
func FormatSeconds(raw string) (string, error) {
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil || secs < 0 {
		return "", fmt.Errorf("invalid time value %q", raw)
	}

	mins := int(secs / 60)
	rem := int(secs) % 60

	frac := ".000"
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		frac = raw[i:]
	}

	return fmt.Sprintf("%02d:%02d%s", mins, rem, frac), nil
}
