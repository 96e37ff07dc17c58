package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jaki95/rekordbox-docgen/config"
	"github.com/jaki95/rekordbox-docgen/internal/docgen"
	"github.com/jaki95/rekordbox-docgen/internal/library"
	"github.com/jaki95/rekordbox-docgen/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	playlistID := flag.Int("playlist", 0, "1-based playlist ID to document (skips the prompt)")
	exportAll := flag.Bool("export", false, "Export docs for every playlist via the configured storage")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <library.xml>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)}))
	slog.SetDefault(logger)

	idx, err := library.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *exportAll {
		exportDocs(cfg, idx)
		return
	}

	playlists := idx.Playlists()

	id := *playlistID - 1
	if *playlistID == 0 {
		fmt.Println("\nID: Title (Track Count)")
		for i, pl := range playlists {
			fmt.Printf("%03d: %s (%d)\n", i+1, pl.Name, len(pl.TrackKeys))
		}
		id = promptPlaylist(len(playlists))
	}

	fmt.Println()

	if err := idx.GenerateDocs(os.Stdout, id); err != nil {
		if errors.Is(err, library.ErrPlaylistOutOfRange) {
			fmt.Fprintf(os.Stderr, "playlist ID must be between 1 and %d\n", len(playlists))
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// promptPlaylist asks for a 1-based playlist ID until a valid one or the
// quit sentinel is entered. Returns a zero-based index.
func promptPlaylist(count int) int {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("\nPlease enter playlist ID or 'q' to quit: ")

		input, err := reader.ReadString('\n')
		if err != nil {
			os.Exit(1)
		}
		input = strings.TrimSpace(input)

		if input == "q" {
			os.Exit(0)
		}

		id, err := strconv.Atoi(input)
		if err != nil || id <= 0 || id > count {
			fmt.Println("Invalid ID. Please retry!")
			continue
		}

		return id - 1
	}
}

func exportDocs(cfg *config.Config, idx *library.Index) {
	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	saved, err := docgen.NewExporter(store).ExportAll(idx)
	if err != nil {
		store.Cleanup()
		log.Fatal(err)
	}

	if err := store.Cleanup(); err != nil {
		slog.Warn("storage cleanup failed", "error", err)
	}

	fmt.Printf("\nExported %d playlist docs\n", len(saved))
}
