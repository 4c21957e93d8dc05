package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURLPrefersLarge(t *testing.T) {
	assert.Equal(t, "l.png", Image{Large: "l.png", Medium: "m.png"}.URL())
	assert.Equal(t, "m.png", Image{Medium: "m.png"}.URL())
	assert.Equal(t, "", Image{}.URL())
}

func TestMediaRecordAccessors(t *testing.T) {
	r := NewMediaRecord(KindAnime, Media{
		ID:          20,
		Type:        "ANIME",
		Title:       MediaTitle{Native: "NARUTO -ナルト-", Romaji: "NARUTO", English: "Naruto"},
		Description: "ninja",
		CoverImage:  Image{Medium: "m.png"},
	})

	assert.Equal(t, KindAnime, r.Kind())
	assert.Equal(t, 20, r.ID())
	assert.Equal(t, "ANIME", r.MediaType())
	assert.Equal(t, []string{"NARUTO -ナルト-", "NARUTO", "Naruto"}, r.Names())
	assert.Equal(t, "NARUTO -ナルト-", r.PrimaryName())
	assert.Equal(t, "NARUTO", r.SecondaryName())
	assert.Equal(t, "m.png", r.ImageURL())

	_, ok := r.Age()
	assert.False(t, ok, "media never has an age")
}

func TestCharacterRecordAccessors(t *testing.T) {
	alt := []string{"Captain Levi"}
	r := NewCharacterRecord(Character{
		ID:    45627,
		Name:  CharacterName{Native: "リヴァイ", Full: "Levi", Alternative: alt},
		Age:   "30s",
		Image: Image{Large: "l.png"},
	})
	alt[0] = "changed"

	assert.Equal(t, KindCharacter, r.Kind())
	assert.Empty(t, r.MediaType())
	assert.Equal(t, []string{"リヴァイ", "Levi", "Captain Levi"}, r.Names())

	age, ok := r.Age()
	assert.True(t, ok)
	assert.Equal(t, "30s", age)
}

func TestNamesSkipsEmptyVariants(t *testing.T) {
	r := NewMediaRecord(KindManga, Media{Title: MediaTitle{Romaji: "Berserk"}})

	assert.Equal(t, []string{"Berserk"}, r.Names())
	assert.Equal(t, "Berserk", r.PrimaryName())
	assert.Empty(t, r.SecondaryName())
}

func TestQueryKindExpand(t *testing.T) {
	assert.Equal(t, []QueryKind{QueryAnime, QueryManga, QueryCharacter}, QueryAny.Expand())
	assert.Equal(t, []QueryKind{QueryManga}, QueryManga.Expand())
	assert.Equal(t, KindCharacter, QueryCharacter.Kind())
	assert.Equal(t, Kind(""), QueryAny.Kind())
}

func TestCardHeading(t *testing.T) {
	assert.Equal(t, "A (B)", Card{Title: "A", Subtitle: "B"}.Heading())
	assert.Equal(t, "A", Card{Title: "A"}.Heading())
}
