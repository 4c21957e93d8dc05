package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
)

// mirror-server answers AniList-style GraphQL POSTs from a local file so the
// bot can be exercised offline. The file maps a search text to the "data"
// object AniList would return for it:
//
//	{
//	  "naruto": {"anime": {"media": [...]}, "manga": {"media": []}, "character": {"characters": []}}
//	}
//
// Keys are matched case-insensitively; unknown searches get an empty data object.
func main() {
	addr := flag.String("addr", ":9000", "listen address")
	dataPath := flag.String("data", "data/anilist.json", "canned responses file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "mirror")

	http.Handle("/", newMirrorHandler(*dataPath, logger))

	logger.Info("mirror-server listening", "addr", *addr, "data", *dataPath)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Error("mirror-server stopped", "error", err)
		os.Exit(1)
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newMirrorHandler(dataPath string, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST a GraphQL request", http.StatusMethodNotAllowed)
			return
		}

		var req graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}

		// re-read on every request so the file can be edited while running
		b, err := os.ReadFile(dataPath)
		if err != nil {
			writeErrors(w, http.StatusInternalServerError, "cannot read "+dataPath+": "+err.Error())
			return
		}
		var canned map[string]json.RawMessage
		if err := json.Unmarshal(b, &canned); err != nil {
			writeErrors(w, http.StatusInternalServerError, dataPath+" invalid JSON: "+err.Error())
			return
		}

		search, _ := req.Variables["query"].(string)
		data, ok := lookup(canned, search)
		if !ok {
			data = json.RawMessage(`{}`)
		}
		logger.Info("query", "search", search, "hit", ok)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]json.RawMessage{"data": data})
	})
}

func lookup(canned map[string]json.RawMessage, search string) (json.RawMessage, bool) {
	for k, v := range canned {
		if strings.EqualFold(k, search) {
			return v, true
		}
	}
	return nil, false
}

func writeErrors(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data":   nil,
		"errors": []map[string]any{{"message": msg, "status": status}},
	})
}
