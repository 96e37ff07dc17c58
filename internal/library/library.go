// Package library reads a Rekordbox library XML export and exposes its
// flat track collection and leaf playlists for doc generation.
package library

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/antchfx/xmlquery"

	"github.com/jaki95/rekordbox-docgen/internal/domain"
)

// ErrPlaylistOutOfRange signals a playlist position outside the loaded range.
var ErrPlaylistOutOfRange = errors.New("playlist index out of range")

// Index is a loaded library export. It is built once by Load and
// read-only afterwards; track records are kept as XML nodes and only
// materialized into domain.Track values on lookup.
type Index struct {
	path      string
	records   map[string]*xmlquery.Node
	playlists []*domain.Playlist
}

// Load opens and parses the library file at path and builds the index.
// The file must contain exactly one COLLECTION and exactly one
// PLAYLISTS element, and at least one leaf playlist. Error messages
// identify the failing stage and are meant for the user's error stream.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("library file %s not found", path)
		}
		return nil, fmt.Errorf("library file %s cannot be read, exception: %v", path, err)
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("library file %s cannot be parsed as XML, exception: %v", path, err)
	}

	idx := &Index{
		path:    path,
		records: make(map[string]*xmlquery.Node),
	}

	collections := xmlquery.Find(doc, "//COLLECTION")
	if len(collections) != 1 {
		return nil, fmt.Errorf("library file %s cannot be parsed for COLLECTION tag", path)
	}

	// First record wins for a duplicated TrackID, same as a linear
	// scan over the document would resolve it.
	for _, rec := range xmlquery.Find(collections[0], ".//TRACK") {
		id := rec.SelectAttr("TrackID")
		if _, ok := idx.records[id]; !ok {
			idx.records[id] = rec
		}
	}

	roots := xmlquery.Find(doc, "//PLAYLISTS")
	if len(roots) != 1 {
		return nil, fmt.Errorf("library file %s cannot be parsed for PLAYLIST tag", path)
	}

	// Type 0 nodes are folders that merely group other playlists; only
	// Type 1 nodes carry tracks. The filter applies per node, so a leaf
	// nested under a folder is still kept, in document order.
	for _, node := range xmlquery.Find(roots[0], ".//NODE") {
		if node.SelectAttr("Type") != "1" {
			continue
		}
		idx.playlists = append(idx.playlists, newPlaylist(node))
	}

	if len(idx.playlists) == 0 {
		return nil, fmt.Errorf("library file %s contains 0 playlists", path)
	}

	slog.Debug("library loaded",
		"path", path,
		"tracks", len(idx.records),
		"playlists", len(idx.playlists))

	return idx, nil
}

func newPlaylist(node *xmlquery.Node) *domain.Playlist {
	pl := &domain.Playlist{Name: node.SelectAttr("Name")}

	// The Key attribute of each playlist TRACK maps to a TrackID in
	// the collection.
	for _, ref := range xmlquery.Find(node, ".//TRACK") {
		pl.TrackKeys = append(pl.TrackKeys, ref.SelectAttr("Key"))
	}
	return pl
}

// Playlists returns the leaf playlists in document order.
func (idx *Index) Playlists() []*domain.Playlist {
	return idx.playlists
}

// FindTrack resolves a playlist key against the collection. A key with
// no matching record returns (nil, nil). The Track is rebuilt from the
// XML record on every call; the records stay the source of truth.
func (idx *Index) FindTrack(key string) (*domain.Track, error) {
	rec, ok := idx.records[key]
	if !ok {
		return nil, nil
	}

	var cues []domain.HotCue
	for _, mark := range xmlquery.Find(rec, ".//POSITION_MARK") {
		cue, err := domain.NewHotCue(
			mark.SelectAttr("Num"),
			mark.SelectAttr("Name"),
			mark.SelectAttr("Start"),
			mark.SelectAttr("End"),
			mark.SelectAttr("Type"),
		)
		if err != nil {
			return nil, fmt.Errorf("track %s: %w", key, err)
		}
		cues = append(cues, cue)
	}

	return domain.NewTrack(
		rec.SelectAttr("Artist"),
		rec.SelectAttr("Name"),
		rec.SelectAttr("Comments"),
		cues,
	), nil
}

// GenerateDocs writes the info report followed by the tracklist report
// for the zero-based playlist position to w. An out-of-range position
// returns ErrPlaylistOutOfRange with nothing written.
func (idx *Index) GenerateDocs(w io.Writer, id int) error {
	if id < 0 || id >= len(idx.playlists) {
		return ErrPlaylistOutOfRange
	}

	pl := idx.playlists[id]

	info, err := pl.Info(idx)
	if err != nil {
		return err
	}
	tracklist, err := pl.Tracklist(idx)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, info); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, tracklist)
	return err
}
