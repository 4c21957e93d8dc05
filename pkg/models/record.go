package models

// Image holds the size variants AniList returns for covers and portraits.
type Image struct {
	Large  string `json:"large"`
	Medium string `json:"medium"`
}

// URL prefers the large variant and falls back to medium.
func (i Image) URL() string {
	if i.Large != "" {
		return i.Large
	}
	return i.Medium
}

type MediaTitle struct {
	Native  string `json:"native"`
	Romaji  string `json:"romaji"`
	English string `json:"english"`
}

// Media is an anime or manga entry.
type Media struct {
	ID          int        `json:"id"`
	Type        string     `json:"type"` // "ANIME" or "MANGA"
	Title       MediaTitle `json:"title"`
	Description string     `json:"description"`
	CoverImage  Image      `json:"coverImage"`
}

type CharacterName struct {
	Native      string   `json:"native"`
	Full        string   `json:"full"`
	Alternative []string `json:"alternative"`
}

// Character is a character entry. Age is free text on AniList ("17", "16-17").
type Character struct {
	ID          int           `json:"id"`
	Name        CharacterName `json:"name"`
	Age         string        `json:"age"`
	Description string        `json:"description"`
	Image       Image         `json:"image"`
}

// Record is a candidate returned for one query kind. It is either a Media
// or a Character variant; the kind tag is fixed when the record is built
// and the record is never modified afterwards.
type Record struct {
	kind      Kind
	media     Media
	character Character
}

// NewMediaRecord tags m with kind, which must be KindAnime or KindManga.
func NewMediaRecord(kind Kind, m Media) Record {
	return Record{kind: kind, media: m}
}

func NewCharacterRecord(c Character) Record {
	c.Name.Alternative = append([]string(nil), c.Name.Alternative...)
	return Record{kind: KindCharacter, character: c}
}

func (r Record) Kind() Kind { return r.kind }

func (r Record) IsCharacter() bool { return r.kind == KindCharacter }

func (r Record) ID() int {
	if r.IsCharacter() {
		return r.character.ID
	}
	return r.media.ID
}

// MediaType is the AniList media type ("ANIME", "MANGA"); empty for characters.
func (r Record) MediaType() string {
	if r.IsCharacter() {
		return ""
	}
	return r.media.Type
}

func (r Record) Description() string {
	if r.IsCharacter() {
		return r.character.Description
	}
	return r.media.Description
}

// Age reports the character's age, if the record is a character and has one.
func (r Record) Age() (string, bool) {
	if !r.IsCharacter() || r.character.Age == "" {
		return "", false
	}
	return r.character.Age, true
}

func (r Record) ImageURL() string {
	if r.IsCharacter() {
		return r.character.Image.URL()
	}
	return r.media.CoverImage.URL()
}

// Names returns the non-empty display names in display order:
// native, romaji, english for media and native, full, alternatives for characters.
func (r Record) Names() []string {
	var all []string
	if r.IsCharacter() {
		all = append([]string{r.character.Name.Native, r.character.Name.Full}, r.character.Name.Alternative...)
	} else {
		all = []string{r.media.Title.Native, r.media.Title.Romaji, r.media.Title.English}
	}

	names := make([]string, 0, len(all))
	for _, n := range all {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

func (r Record) PrimaryName() string {
	if names := r.Names(); len(names) > 0 {
		return names[0]
	}
	return ""
}

// SecondaryName is empty when the record only has one display name.
func (r Record) SecondaryName() string {
	if names := r.Names(); len(names) > 1 {
		return names[1]
	}
	return ""
}

// Results maps each queried kind to its best record. A missing key means
// the kind returned nothing.
type Results map[Kind]Record
