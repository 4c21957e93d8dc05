package models

// Kind is the category tag carried by every record returned from AniList.
type Kind string

const (
	KindAnime     Kind = "anime"
	KindManga     Kind = "manga"
	KindCharacter Kind = "character"
)

// QueryKind selects which record kinds a search asks for.
type QueryKind int

const (
	QueryAny QueryKind = iota
	QueryAnime
	QueryManga
	QueryCharacter
)

// AllQueryKinds is the enumeration order used for tie-breaking between kinds.
var AllQueryKinds = []QueryKind{QueryAnime, QueryManga, QueryCharacter}

func (q QueryKind) String() string {
	switch q {
	case QueryAny:
		return "any"
	case QueryAnime:
		return "anime"
	case QueryManga:
		return "manga"
	case QueryCharacter:
		return "character"
	default:
		return "unknown"
	}
}

// Kind returns the record kind a concrete query kind produces.
// QueryAny has no single record kind and returns "".
func (q QueryKind) Kind() Kind {
	switch q {
	case QueryAnime:
		return KindAnime
	case QueryManga:
		return KindManga
	case QueryCharacter:
		return KindCharacter
	default:
		return ""
	}
}

// Expand returns the concrete kinds to query for q.
func (q QueryKind) Expand() []QueryKind {
	if q == QueryAny {
		return append([]QueryKind(nil), AllQueryKinds...)
	}
	return []QueryKind{q}
}
