package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCue(t *testing.T, num, name, start, end, typ string) HotCue {
	t.Helper()
	cue, err := NewHotCue(num, name, start, end, typ)
	require.NoError(t, err)
	return cue
}

func TestNewTrackSortsCuesByLetter(t *testing.T) {
	// Markers arrive in creation order; the track must reorder them.
	track := NewTrack("C", "T3", "", []HotCue{
		mustCue(t, "2", "Outro", "240", "", "0"),
		mustCue(t, "0", "Intro", "0.000", "", "0"),
		mustCue(t, "1", "Loop 8", "65.250", "69.125", "4"),
	})

	letters := make([]rune, len(track.HotCues))
	for i, c := range track.HotCues {
		letters[i] = c.Letter
	}
	assert.Equal(t, []rune{'A', 'B', 'C'}, letters)
}

func TestTrackDoc(t *testing.T) {
	track := NewTrack("B", "T2", "big drop", []HotCue{
		mustCue(t, "1", "Loop 8", "65.250", "69.125", "4"),
		mustCue(t, "0", "Drop", "12.5", "", "0"),
	})

	expected := "B - T2\n" +
		"* Comments: big drop\n" +
		"* Hot Cues\n" +
		"  - A: Drop (00:12.5)\n" +
		"  - B: Loop 8 (01:05.250 - 01:09.125)\n" +
		"\n"
	assert.Equal(t, expected, track.Doc())
}

func TestTrackDocWithoutCues(t *testing.T) {
	track := NewTrack("A", "T1", "", nil)

	// The hot cue header is still present, followed by no lines.
	assert.Equal(t, "A - T1\n* Comments: \n* Hot Cues\n\n", track.Doc())
}
