package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anilookup/internal/anilist"
	"anilookup/internal/search"
	"anilookup/pkg/models"
)

type stubFetcher struct {
	results models.Results
	err     error
	texts   []string
}

func (s *stubFetcher) Fetch(_ context.Context, _ []models.QueryKind, text string) (models.Results, error) {
	s.texts = append(s.texts, text)
	return s.results, s.err
}

func narutoResults() models.Results {
	return models.Results{
		models.KindAnime: models.NewMediaRecord(models.KindAnime, models.Media{
			ID:          20,
			Type:        "ANIME",
			Title:       models.MediaTitle{Native: "NARUTO -ナルト-", Romaji: "NARUTO"},
			Description: "Ninja~! Hokage!~",
			CoverImage:  models.Image{Large: "https://img/l.jpg"},
		}),
	}
}

func newAniList(f *stubFetcher) *AniList {
	return NewAniList(search.NewSearcher(f, nil))
}

func TestAniListQuery(t *testing.T) {
	f := &stubFetcher{results: narutoResults()}
	p := newAniList(f)

	assert.Equal(t, "al", p.Prefix())
	assert.Equal(t, "AniList for piyo", p.Name())

	card, err := p.Query(context.Background(), []string{"Naruto"})
	require.NoError(t, err)
	assert.Equal(t, "NARUTO -ナルト- (NARUTO)", card.Heading())
	assert.Equal(t, "Ninja", card.Body)
	assert.Equal(t, "https://anilist.co/anime/20", card.URL)
	assert.Equal(t, "https://img/l.jpg", card.Thumbnail)
}

func TestAniListJoinsArgs(t *testing.T) {
	f := &stubFetcher{results: models.Results{}}
	_, err := newAniList(f).Query(context.Background(), []string{"[Levi", "Ackerman]"})

	assert.ErrorIs(t, err, search.ErrNoResults)
	assert.Equal(t, []string{"Levi Ackerman"}, f.texts)
}

func TestAniListEmptyQuery(t *testing.T) {
	f := &stubFetcher{}
	_, err := newAniList(f).Query(context.Background(), nil)

	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Empty(t, f.texts, "no round trip for an empty query")
}

func TestAniListCandidates(t *testing.T) {
	f := &stubFetcher{results: narutoResults()}
	scored, err := newAniList(f).Candidates(context.Background(), []string{"NARUTO"})
	require.NoError(t, err)
	require.Len(t, scored, 1)
	assert.Equal(t, 1.0, scored[0].Score)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "No results found.", UserMessage(fmt.Errorf("wrapped: %w", search.ErrNoResults)))
	assert.Equal(t, "", UserMessage(nil))
	assert.NotEmpty(t, UserMessage(errors.New("boom")))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(nil)
	p := newAniList(&stubFetcher{results: narutoResults()})
	require.NoError(t, r.Register(p))
	assert.Error(t, r.Register(p), "duplicate prefix")

	got, ok := r.Lookup("AL")
	require.True(t, ok)
	assert.Same(t, p, got)
	assert.Len(t, r.Plugins(), 1)

	card, err := r.Dispatch(context.Background(), "al", []string{"Naruto"})
	require.NoError(t, err)
	assert.Equal(t, "https://anilist.co/anime/20", card.URL)

	_, err = r.Dispatch(context.Background(), "mal", []string{"Naruto"})
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line   string
		prefix string
		args   []string
		ok     bool
	}{
		{"!al Naruto", "al", []string{"Naruto"}, true},
		{"!AL  [Levi]  ", "al", []string{"[Levi]"}, true},
		{"!al", "al", []string{}, true},
		{"al Naruto", "", nil, false},
		{"!", "", nil, false},
		{"hello", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			prefix, args, ok := ParseCommand("!", tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.args, args)
		})
	}
}

func newRouter(t *testing.T, f *stubFetcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := NewRegistry(nil)
	require.NoError(t, r.Register(newAniList(f)))

	router := gin.New()
	NewHandler(r).RegisterRoutes(router.Group("/plugins"))
	return router
}

func TestHandlerQuery(t *testing.T) {
	router := newRouter(t, &stubFetcher{results: narutoResults()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plugins/al?q=Naruto", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var card models.Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, "NARUTO -ナルト-", card.Title)
	assert.Equal(t, "NARUTO", card.Subtitle)
	assert.Equal(t, "AniList for piyo", card.Footer)
}

func TestHandlerList(t *testing.T) {
	router := newRouter(t, &stubFetcher{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plugins", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"prefix":"al"`)
}

func TestHandlerErrors(t *testing.T) {
	tests := []struct {
		name    string
		fetcher *stubFetcher
		path    string
		status  int
		message string
	}{
		{"no results", &stubFetcher{results: models.Results{}}, "/plugins/al?q=zzz", http.StatusNotFound, "No results found."},
		{"empty query", &stubFetcher{}, "/plugins/al", http.StatusBadRequest, ""},
		{"unknown prefix", &stubFetcher{}, "/plugins/mal?q=x", http.StatusNotFound, ""},
		{"upstream down", &stubFetcher{err: fmt.Errorf("anilist: %w: status 500", anilist.ErrTransport)}, "/plugins/al?q=x", http.StatusBadGateway, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.fetcher)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.message != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.message, body["error"])
			}
		})
	}
}
