package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"anilookup/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		kind  models.QueryKind
		text  string
	}{
		{"{Naruto}", models.QueryAnime, "Naruto"},
		{"<Berserk>", models.QueryManga, "Berserk"},
		{"[Levi]", models.QueryCharacter, "Levi"},
		{"[Levi Ackerman]", models.QueryCharacter, "Levi Ackerman"},
		{"{ spaced }", models.QueryAnime, " spaced "},
		{"{}", models.QueryAnime, ""},
		{"Naruto", models.QueryAny, "Naruto"},
		{"{Naruto", models.QueryAny, "{Naruto"},
		{"Naruto}", models.QueryAny, "Naruto}"},
		{"{Naruto]", models.QueryAny, "{Naruto]"},
		{"<Levi]", models.QueryAny, "<Levi]"},
		{" [Levi]", models.QueryAny, " [Levi]"},
		{"{", models.QueryAny, "{"},
		{"", models.QueryAny, ""},
		{"{<x>}", models.QueryAnime, "<x>"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, text := Classify(tt.input)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.text, text)
		})
	}
}
