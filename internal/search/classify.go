package search

import (
	"strings"

	"anilookup/pkg/models"
)

type wrapper struct {
	open, close string
	kind        models.QueryKind
}

// wrappers are checked in order; the first pair that encloses the whole
// input wins.
var wrappers = []wrapper{
	{"{", "}", models.QueryAnime},
	{"<", ">", models.QueryManga},
	{"[", "]", models.QueryCharacter},
}

// Classify narrows a search to one kind when the input is wrapped in a
// recognised bracket pair and returns the text with the two delimiters
// removed. Anything else searches every kind with the input unchanged.
func Classify(input string) (models.QueryKind, string) {
	for _, w := range wrappers {
		if len(input) >= 2 && strings.HasPrefix(input, w.open) && strings.HasSuffix(input, w.close) {
			return w.kind, input[len(w.open) : len(input)-len(w.close)]
		}
	}
	return models.QueryAny, input
}
