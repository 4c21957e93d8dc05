// Package plugin defines the command contract the bot host routes user
// input through, a registry of plugins keyed by prefix, and the AniList
// lookup plugin.
package plugin

import (
	"context"
	"errors"

	"anilookup/internal/search"
	"anilookup/pkg/models"
)

// Plugin answers one command prefix with a card.
type Plugin interface {
	Name() string
	Prefix() string
	Query(ctx context.Context, args []string) (models.Card, error)
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrEmptyQuery     = errors.New("empty query")
)

// NoResultsMessage is what users see when a search matched nothing.
const NoResultsMessage = "No results found."

// UserMessage turns a query failure into text safe to show in a chat room.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, search.ErrNoResults):
		return NoResultsMessage
	case errors.Is(err, ErrEmptyQuery):
		return "Please give me something to search for."
	case errors.Is(err, ErrUnknownCommand):
		return "Unknown command."
	default:
		return "Search failed, please try again later."
	}
}

// Outcome classifies err for metrics labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, search.ErrNoResults):
		return "no_results"
	case errors.Is(err, ErrEmptyQuery), errors.Is(err, ErrUnknownCommand):
		return "bad_request"
	default:
		return "error"
	}
}
