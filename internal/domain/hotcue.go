package domain

import (
	"fmt"
	"strconv"
)

// loopType is the POSITION_MARK Type value Rekordbox uses for loops.
const loopType = "4"

// HotCue is a single named marker or loop region on a track.
type HotCue struct {
	Letter  rune
	Comment string
	IsLoop  bool
	Start   string
	End     string
}

// NewHotCue builds a HotCue from the raw POSITION_MARK attribute values.
// The display letter is 'A' plus the zero-based Num ordinal; ordinals
// past 25 run beyond 'Z' unclamped, matching the source format. For
// non-loop markers the end time mirrors the start time and the End
// attribute is never parsed.
func NewHotCue(num, name, start, end, typ string) (HotCue, error) {
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return HotCue{}, fmt.Errorf("invalid hot cue ordinal %q", num)
	}

	startTime, err := FormatSeconds(start)
	if err != nil {
		return HotCue{}, fmt.Errorf("hot cue start: %w", err)
	}

	cue := HotCue{
		Letter:  rune('A' + n),
		Comment: name,
		IsLoop:  typ == loopType,
		Start:   startTime,
		End:     startTime,
	}

	if cue.IsLoop {
		endTime, err := FormatSeconds(end)
		if err != nil {
			return HotCue{}, fmt.Errorf("hot cue end: %w", err)
		}
		cue.End = endTime
	}

	return cue, nil
}

// Doc renders the cue as one doc line, newline terminated.
func (c HotCue) Doc() string {
	if c.IsLoop {
		return fmt.Sprintf("%c: %s (%s - %s)\n", c.Letter, c.Comment, c.Start, c.End)
	}
	return fmt.Sprintf("%c: %s (%s)\n", c.Letter, c.Comment, c.Start)
}
