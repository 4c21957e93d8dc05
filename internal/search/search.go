// Package search picks the AniList record that best matches free-text
// keywords: classify the input, run one combined query, score every
// returned candidate and keep the highest.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"anilookup/pkg/models"
)

// ErrNoResults is returned when the query succeeded but no candidate
// matched the input at all.
var ErrNoResults = errors.New("no results found")

// Fetcher runs a single combined query for the given kinds.
type Fetcher interface {
	Fetch(ctx context.Context, kinds []models.QueryKind, text string) (models.Results, error)
}

type Searcher struct {
	fetcher Fetcher
	logger  *slog.Logger
}

func NewSearcher(fetcher Fetcher, logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Searcher{fetcher: fetcher, logger: logger.With("component", "search")}
}

// Scored pairs a candidate with its similarity to the input.
type Scored struct {
	Record models.Record
	Score  float64
}

// Candidates runs the query for input and scores every returned record,
// in Anime, Manga, Character order. Candidates are scored against the input
// exactly as typed, brackets included, while the remote query uses the
// unwrapped text.
func (s *Searcher) Candidates(ctx context.Context, input string) ([]Scored, error) {
	kind, text := Classify(input)
	kinds := kind.Expand()

	results, err := s.fetcher.Fetch(ctx, kinds, text)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", input, err)
	}

	scored := make([]Scored, 0, len(results))
	for _, k := range kinds {
		rec, ok := results[k.Kind()]
		if !ok {
			continue
		}
		score := Score(input, rec.Names())
		s.logger.Debug("candidate", "kind", rec.Kind(), "id", rec.ID(), "score", score)
		scored = append(scored, Scored{Record: rec, Score: score})
	}
	return scored, nil
}

// Search returns the best-scoring record for input. Ties keep the earlier
// kind and a zero score never wins.
func (s *Searcher) Search(ctx context.Context, input string) (models.Record, error) {
	candidates, err := s.Candidates(ctx, input)
	if err != nil {
		return models.Record{}, err
	}

	best, ok := Best(candidates)
	if !ok {
		return models.Record{}, ErrNoResults
	}
	return best.Record, nil
}

// Best picks the first candidate with the strictly highest score above zero.
func Best(candidates []Scored) (Scored, bool) {
	var best Scored
	found := false
	for _, c := range candidates {
		if c.Score > best.Score {
			best = c
			found = true
		}
	}
	return best, found
}
