package plugin

import (
	"context"
	"strings"

	"anilookup/internal/present"
	"anilookup/internal/search"
	"anilookup/pkg/models"
)

// AniListPrefix is the command that triggers an AniList lookup.
const AniListPrefix = "al"

// AniList looks up anime, manga and characters on AniList.
//
//	al Naruto        search every kind
//	al {Naruto}      anime only
//	al <Berserk>     manga only
//	al [Levi]        characters only
type AniList struct {
	searcher *search.Searcher
}

func NewAniList(searcher *search.Searcher) *AniList {
	return &AniList{searcher: searcher}
}

func (p *AniList) Name() string   { return present.Footer }
func (p *AniList) Prefix() string { return AniListPrefix }

func (p *AniList) Query(ctx context.Context, args []string) (models.Card, error) {
	input := strings.Join(args, " ")
	if strings.TrimSpace(input) == "" {
		return models.Card{}, ErrEmptyQuery
	}

	rec, err := p.searcher.Search(ctx, input)
	if err != nil {
		return models.Card{}, err
	}
	return present.Present(rec), nil
}

// Candidates exposes the scored candidates behind a query, for debugging
// why a record was or was not chosen.
func (p *AniList) Candidates(ctx context.Context, args []string) ([]search.Scored, error) {
	input := strings.Join(args, " ")
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyQuery
	}
	return p.searcher.Candidates(ctx, input)
}
