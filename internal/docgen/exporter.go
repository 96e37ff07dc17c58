// Package docgen batch-renders playlist docs through a storage backend.
package docgen

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/jaki95/rekordbox-docgen/internal/library"
	"github.com/jaki95/rekordbox-docgen/internal/storage"
)

// Exporter renders the docs for every playlist in a library and saves
// them through a storage backend, one file per playlist.
type Exporter struct {
	store storage.Storage
}

func NewExporter(store storage.Storage) *Exporter {
	return &Exporter{store: store}
}

// ExportAll saves one doc per playlist, named after its 1-based position
// and sanitized name. Returns the saved locations in playlist order.
func (e *Exporter) ExportAll(idx *library.Index) ([]string, error) {
	playlists := idx.Playlists()

	bar := progressbar.NewOptions(
		len(playlists),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		// progressbar.ThemeASCII only exists in v3.16+, which requires Go 1.22;
		// this is its exact definition, inlined for v3.15.0 compatibility.
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: ".",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionFullWidth(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Exporting playlist docs..."),
	)

	var saved []string
	for i, pl := range playlists {
		var doc strings.Builder
		if err := idx.GenerateDocs(&doc, i); err != nil {
			return nil, fmt.Errorf("playlist %q: %w", pl.Name, err)
		}

		name := fmt.Sprintf("%03d - %s.txt", i+1, sanitizeName(pl.Name))
		location, err := e.store.SaveDoc(name, []byte(doc.String()))
		if err != nil {
			return nil, fmt.Errorf("playlist %q: %w", pl.Name, err)
		}

		slog.Debug("exported playlist doc", "playlist", pl.Name, "location", location)
		saved = append(saved, location)
		bar.Add(1)
	}

	return saved, nil
}

// sanitizeName strips characters that are unsafe in file and object names.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer("/", "-", ":", "-", "\"", "'", "?", "", "\\", "-", "|", "-")
	if s := strings.TrimSpace(replacer.Replace(name)); s != "" {
		return s
	}
	return "playlist"
}
