package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anilookup/internal/anilist"
	"anilookup/internal/chat"
	"anilookup/internal/plugin"
	"anilookup/internal/search"
)

func testRouter(t *testing.T, endpoint string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := plugin.NewRegistry(nil)
	client := anilist.NewClient(endpoint, 0, nil)
	require.NoError(t, registry.Register(plugin.NewAniList(search.NewSearcher(client, nil))))
	return newRouter(registry, chat.NewHub(0), chat.NewBot(registry, "!"), nil)
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t, "http://127.0.0.1:1/")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"plugins":1`)
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter(t, "http://127.0.0.1:1/")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anilookup_chat_connections_active")
}

func TestLookupEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {
			"anime": {"media": [{"id": 20, "type": "ANIME", "title": {"native": "NARUTO -ナルト-", "romaji": "NARUTO"}, "description": "ninja", "coverImage": {"large": "https://img/l.jpg"}}]},
			"manga": {"media": []},
			"character": {"characters": []}
		}}`))
	}))
	defer upstream.Close()

	router := testRouter(t, upstream.URL)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plugins/al?q=Naruto", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"url":"https://anilist.co/anime/20"`)
}

func TestLookupUpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	router := testRouter(t, upstream.URL)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plugins/al?q=Naruto", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
