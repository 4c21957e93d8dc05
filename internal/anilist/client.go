package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"anilookup/internal/metrics"
	"anilookup/pkg/models"
)

// DefaultEndpoint is the public AniList GraphQL API.
const DefaultEndpoint = "https://graphql.anilist.co/"

const maxBodyBytes = 4 << 20

// ErrTransport marks every failure of the round trip itself: network
// errors, non-2xx responses, undecodable payloads and GraphQL errors.
var ErrTransport = errors.New("transport failure")

// Client issues combined search queries against an AniList-compatible
// GraphQL endpoint.
type Client struct {
	Endpoint string
	HTTP     *http.Client
	Logger   *slog.Logger
}

func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: timeout},
		Logger:   logger.With("component", "anilist"),
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type mediaPage struct {
	Media []models.Media `json:"media"`
}

type characterPage struct {
	Characters []models.Character `json:"characters"`
}

type pages struct {
	Anime     *mediaPage     `json:"anime"`
	Manga     *mediaPage     `json:"manga"`
	Character *characterPage `json:"character"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Fetch runs one combined query for kinds and returns the top record per
// kind. Kinds with no match are absent from the result; any failure of the
// round trip fails the whole call.
func (c *Client) Fetch(ctx context.Context, kinds []models.QueryKind, text string) (models.Results, error) {
	start := time.Now()
	data, err := c.FetchRaw(ctx, kinds, text)
	if err != nil {
		return nil, err
	}

	var p pages
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("anilist: decode data: %w: %w", ErrTransport, err)
	}

	results := make(models.Results, len(kinds))
	if p.Anime != nil && len(p.Anime.Media) > 0 {
		addRecord(results, models.NewMediaRecord(models.KindAnime, p.Anime.Media[0]))
	}
	if p.Manga != nil && len(p.Manga.Media) > 0 {
		addRecord(results, models.NewMediaRecord(models.KindManga, p.Manga.Media[0]))
	}
	if p.Character != nil && len(p.Character.Characters) > 0 {
		addRecord(results, models.NewCharacterRecord(p.Character.Characters[0]))
	}

	c.Logger.Debug("query finished",
		"kinds", kindNames(kinds),
		"search", text,
		"found", len(results),
		"elapsed", time.Since(start),
	)
	return results, nil
}

// FetchRaw runs the combined query and returns the response's data object
// undecoded, keyed by the kind aliases "anime", "manga" and "character".
func (c *Client) FetchRaw(ctx context.Context, kinds []models.QueryKind, text string) (json.RawMessage, error) {
	query, err := buildQuery(kinds)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(graphQLRequest{
		Query:     query,
		Variables: map[string]any{"query": text},
	})
	if err != nil {
		return nil, fmt.Errorf("anilist: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("anilist: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	metrics.UpstreamLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("network_error").Inc()
		return nil, fmt.Errorf("anilist: request: %w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("network_error").Inc()
		return nil, fmt.Errorf("anilist: read body: %w: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(fmt.Sprintf("%dxx", resp.StatusCode/100)).Inc()
		return nil, fmt.Errorf("anilist: %w: status %d: %s", ErrTransport, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded graphQLResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("malformed").Inc()
		return nil, fmt.Errorf("anilist: decode: %w: %w", ErrTransport, err)
	}
	if len(decoded.Errors) > 0 {
		metrics.UpstreamRequestsTotal.WithLabelValues("graphql_error").Inc()
		return nil, fmt.Errorf("anilist: %w: graphql: %s", ErrTransport, decoded.Errors[0].Message)
	}
	if len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		metrics.UpstreamRequestsTotal.WithLabelValues("malformed").Inc()
		return nil, fmt.Errorf("anilist: %w: response has no data", ErrTransport)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("ok").Inc()
	return decoded.Data, nil
}

// addRecord drops records without any display name; they cannot be scored
// or titled and count as no match for their kind.
func addRecord(results models.Results, r models.Record) {
	if len(r.Names()) == 0 {
		return
	}
	results[r.Kind()] = r
}

func kindNames(kinds []models.QueryKind) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k.String())
	}
	return out
}
