// Package present turns a selected AniList record into a display card.
package present

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"anilookup/pkg/models"
)

const (
	// Footer brands every card produced by the AniList plugin.
	Footer = "AniList for piyo"
	Color  = "BLUE"

	baseURL = "https://anilist.co"
)

var (
	spoilerSpan = regexp.MustCompile(`(?s)~!.*?!~`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

// Present maps r onto the card fields. r is not modified.
func Present(r models.Record) models.Card {
	return models.Card{
		Title:     r.PrimaryName(),
		Subtitle:  r.SecondaryName(),
		Body:      Body(r),
		URL:       URL(r),
		Thumbnail: r.ImageURL(),
		Footer:    Footer,
		Color:     Color,
	}
}

// Body is the description with spoilers removed, prefixed by the age for
// characters that have one.
func Body(r models.Record) string {
	var b strings.Builder
	if age, ok := r.Age(); ok {
		fmt.Fprintf(&b, "Age: %s. ", age)
	}
	b.WriteString(StripSpoilers(r.Description()))
	return b.String()
}

// StripSpoilers deletes every ~!…!~ span, including spans that cross line
// breaks, then collapses three or more newlines into two. Removal repeats
// until no span is left, so stripping twice equals stripping once.
func StripSpoilers(s string) string {
	for {
		next := spoilerSpan.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}
	return blankRuns.ReplaceAllString(s, "\n\n")
}

// URL is the record's page on anilist.co.
func URL(r models.Record) string {
	return baseURL + "/" + pathSegment(r) + "/" + strconv.Itoa(r.ID())
}

func pathSegment(r models.Record) string {
	if r.IsCharacter() {
		return strings.TrimSuffix(string(r.Kind()), "s")
	}
	return strings.ToLower(r.MediaType())
}
