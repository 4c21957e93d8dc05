package search

import (
	"strings"
	"unicode"
)

// Score returns the best similarity between input and any of names.
// Names vary by script and by full or short form, so the maximum is used
// rather than only the primary name.
func Score(input string, names []string) float64 {
	best := 0.0
	for _, name := range names {
		if s := Similarity(input, name); s > best {
			best = s
		}
	}
	return best
}

// Similarity is the Dice coefficient over character bigrams, ignoring
// whitespace and case. It is always in [0, 1].
func Similarity(a, b string) float64 {
	ra := []rune(normalize(a))
	rb := []rune(normalize(b))

	if string(ra) == string(rb) {
		return 1
	}
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	bigrams := make(map[[2]rune]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		bigrams[[2]rune{ra[i], ra[i+1]}]++
	}

	shared := 0
	for i := 0; i < len(rb)-1; i++ {
		bg := [2]rune{rb[i], rb[i+1]}
		if bigrams[bg] > 0 {
			bigrams[bg]--
			shared++
		}
	}

	return 2 * float64(shared) / float64(len(ra)+len(rb)-2)
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
