package anilist

import (
	"fmt"
	"strings"

	"anilookup/pkg/models"
)

const mediaFields = `
      id
      type
      title { native romaji english }
      description
      coverImage { large medium }`

const characterFields = `
      id
      name { native full alternative }
      age
      description
      image { large medium }`

// buildQuery assembles one GraphQL document with an aliased Page block per
// kind, so every search costs exactly one round trip. Each block asks for
// the single most popular (or most favourited) match.
func buildQuery(kinds []models.QueryKind) (string, error) {
	if len(kinds) == 0 {
		return "", fmt.Errorf("anilist: no kinds to query")
	}

	var b strings.Builder
	b.WriteString("query ($query: String) {\n")

	seen := make(map[models.QueryKind]bool, len(kinds))
	for _, k := range kinds {
		if seen[k] {
			continue
		}
		seen[k] = true

		switch k {
		case models.QueryAnime:
			writePage(&b, "anime", "media(search: $query, type: ANIME, sort: POPULARITY_DESC)", mediaFields)
		case models.QueryManga:
			writePage(&b, "manga", "media(search: $query, type: MANGA, sort: POPULARITY_DESC)", mediaFields)
		case models.QueryCharacter:
			writePage(&b, "character", "characters(search: $query, sort: FAVOURITES_DESC)", characterFields)
		default:
			return "", fmt.Errorf("anilist: cannot query kind %q", k)
		}
	}

	b.WriteString("}\n")
	return b.String(), nil
}

func writePage(b *strings.Builder, alias, selection, fields string) {
	fmt.Fprintf(b, "  %s: Page(page: 1, perPage: 1) {\n    %s {%s\n    }\n  }\n", alias, selection, fields)
}
