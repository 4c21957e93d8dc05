package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "Naruto", "Naruto", 1},
		{"whitespace ignored", "Naruto Uzumaki", "NarutoUzumaki", 1},
		{"both empty", "", "", 1},
		{"disjoint", "abc", "xyz", 0},
		{"too short", "a", "ab", 0},
		{"case ignored", "naruto", "NARUTO", 1},
		{"bracketed input", "[Levi]", "Levi", 0.75},
		{"repeated bigrams counted once each", "aaaa", "aa", 0.5},
		{"partial", "night", "nacht", 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestScoreTakesMaximumOverNames(t *testing.T) {
	names := []string{"進撃の巨人", "Shingeki no Kyojin", "Attack on Titan"}
	assert.InDelta(t, 1.0, Score("Attack on Titan", names), 1e-9)

	reversed := []string{names[2], names[1], names[0]}
	assert.Equal(t, Score("Attack Titan", names), Score("Attack Titan", reversed))
}

func TestScoreRange(t *testing.T) {
	inputs := []string{"", "a", "Naruto", "[Levi]", "ナルト", "one piece"}
	names := []string{"", "b", "NARUTO", "Levi", "ナルト疾風伝", "One Piece"}

	for _, in := range inputs {
		s := Score(in, names)
		assert.GreaterOrEqual(t, s, 0.0, in)
		assert.LessOrEqual(t, s, 1.0, in)
		assert.Equal(t, 1.0, Score(in, []string{in}), "exact match for %q", in)
	}
}

func TestScoreNoNames(t *testing.T) {
	assert.Equal(t, 0.0, Score("Naruto", nil))
}
