package domain

import (
	"fmt"
	"strings"
)

// TrackFinder resolves a playlist track key against the collection.
// A key with no matching track resolves to (nil, nil): dangling
// references are a normal state in exported libraries, not an error.
type TrackFinder interface {
	FindTrack(key string) (*Track, error)
}

// Playlist is a leaf playlist: a display name plus the ordered track
// keys referencing the collection. Keys may be duplicated or dangling
// and are only resolved at render time.
type Playlist struct {
	Name      string
	TrackKeys []string
}

// Info renders the detailed report for the playlist: one block per
// resolvable track, in playlist order. Unresolvable keys are skipped
// without leaving a gap.
func (p *Playlist) Info(finder TrackFinder) (string, error) {
	var b strings.Builder
	b.WriteString("Track Info\n----------\n")
	for _, key := range p.TrackKeys {
		track, err := finder.FindTrack(key)
		if err != nil {
			return "", fmt.Errorf("resolve track %s: %w", key, err)
		}
		if track == nil {
			continue
		}
		b.WriteString(track.Doc())
	}
	return b.String(), nil
}

// Tracklist renders the bare artist-title listing for the playlist.
func (p *Playlist) Tracklist(finder TrackFinder) (string, error) {
	var b strings.Builder
	b.WriteString("Tracklist\n---------\n")
	for _, key := range p.TrackKeys {
		track, err := finder.FindTrack(key)
		if err != nil {
			return "", fmt.Errorf("resolve track %s: %w", key, err)
		}
		if track == nil {
			continue
		}
		fmt.Fprintf(&b, "%s - %s\n", track.Artist, track.Title)
	}
	return b.String(), nil
}
