package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Track is a single collection entry with its annotated hot cues.
type Track struct {
	Artist  string
	Title   string
	Comment string
	HotCues []HotCue
}

// NewTrack builds a Track, ordering the cues ascending by display
// letter. Rekordbox stores markers in creation order; the docs want
// them alphabetic.
func NewTrack(artist, title, comment string, cues []HotCue) *Track {
	sorted := make([]HotCue, len(cues))
	copy(sorted, cues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Letter < sorted[j].Letter
	})

	return &Track{
		Artist:  artist,
		Title:   title,
		Comment: comment,
		HotCues: sorted,
	}
}

// Doc renders the detailed per-track block used by the info report,
// ending with a blank line. The hot cue header is emitted even when
// the track has no cues.
func (t *Track) Doc() string {
	var cues strings.Builder
	for _, c := range t.HotCues {
		cues.WriteString("  - ")
		cues.WriteString(c.Doc())
	}
	return fmt.Sprintf("%s - %s\n* Comments: %s\n* Hot Cues\n%s\n",
		t.Artist, t.Title, t.Comment, cues.String())
}
