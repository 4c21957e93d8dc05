package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"anilookup/internal/anilist"
	"anilookup/pkg/models"
)

// export-mirror records live AniList answers for the given searches into the
// file served by mirror-server:
//
//	export-mirror -out data/anilist.json Naruto Levi "Cowboy Bebop"
func main() {
	var (
		outPath  = flag.String("out", "data/anilist.json", "output JSON path")
		endpoint = flag.String("endpoint", anilist.DefaultEndpoint, "AniList GraphQL endpoint")
		merge    = flag.Bool("merge", true, "keep entries already in the output file")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	searches := flag.Args()
	if len(searches) == 0 {
		fmt.Fprintln(os.Stderr, "usage: export-mirror [-out path] <search> [search...]")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	out := map[string]json.RawMessage{}
	if *merge {
		if b, err := os.ReadFile(*outPath); err == nil {
			if err := json.Unmarshal(b, &out); err != nil {
				logger.Error("existing mirror file is invalid", "path", *outPath, "error", err)
				os.Exit(1)
			}
		}
	}

	client := anilist.NewClient(*endpoint, 15*time.Second, logger)
	n, err := record(ctx, client, searches, out)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	if err := writeMirror(*outPath, out); err != nil {
		logger.Error("write failed", "error", err)
		os.Exit(1)
	}
	logger.Info("mirror written", "path", *outPath, "recorded", n, "entries", len(out))
}

type rawFetcher interface {
	FetchRaw(ctx context.Context, kinds []models.QueryKind, text string) (json.RawMessage, error)
}

// record stores the data object for every search under its lowercased text.
func record(ctx context.Context, f rawFetcher, searches []string, out map[string]json.RawMessage) (int, error) {
	n := 0
	for _, s := range searches {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		data, err := f.FetchRaw(ctx, models.QueryAny.Expand(), s)
		if err != nil {
			return n, fmt.Errorf("record %q: %w", s, err)
		}
		out[strings.ToLower(s)] = data
		n++
	}
	return n, nil
}

func writeMirror(path string, entries map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
