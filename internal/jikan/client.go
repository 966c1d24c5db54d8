package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public Jikan v4 API root.
	DefaultBaseURL = "https://api.jikan.moe/v4"
	// DefaultMinInterval is the minimum spacing between outbound calls.
	DefaultMinInterval = time.Second

	requestTimeout = 15 * time.Second
)

// Result is the outcome of an upstream call. Data holds the unwrapped
// payload of the response envelope; Err records the transport or decode
// failure that left Data empty. Callers that only want the degrade-to-empty
// contract can ignore Err.
type Result struct {
	Data json.RawMessage
	Err  error
}

// Failed reports whether the upstream call was absorbed as a failure.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Empty reports whether the result carries no payload, either because the
// upstream returned none or because the call failed.
func (r Result) Empty() bool {
	return len(r.Data) == 0 || string(r.Data) == "null"
}

// envelope is the Jikan response wrapper; everything outside data is discarded.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Client is a throttled facade over the Jikan API. All calls funnel through
// one limiter owned by the client, so no two outbound requests start closer
// than the minimum interval no matter how many handlers call concurrently.
// Failures are logged and folded into the Result, never returned as errors.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewClient creates a Jikan client. Zero values fall back to the defaults.
func NewClient(baseURL string, minInterval time.Duration, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
		log:     log.With().Str("component", "jikan").Logger(),
	}
}

// TopAnime returns the top-ranked anime list.
func (c *Client) TopAnime(ctx context.Context, limit int) Result {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	return c.get(ctx, "/top/anime", q)
}

// CurrentSeason returns the anime airing in the current season.
func (c *Client) CurrentSeason(ctx context.Context, limit int) Result {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	return c.get(ctx, "/seasons/now", q)
}

// AnimeByID returns a single anime record.
func (c *Client) AnimeByID(ctx context.Context, id int) Result {
	return c.get(ctx, fmt.Sprintf("/anime/%d", id), nil)
}

// Search runs a free-text search ordered by score, best first.
func (c *Client) Search(ctx context.Context, query string, limit int) Result {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("order_by", "score")
	q.Set("sort", "desc")
	return c.get(ctx, "/anime", q)
}

// Schedule returns the airing schedule, for one day of the week or for the
// whole week when day is empty.
func (c *Client) Schedule(ctx context.Context, day string) Result {
	if day == "" {
		return c.get(ctx, "/schedules", nil)
	}
	return c.get(ctx, "/schedules/"+url.PathEscape(day), nil)
}

// Characters returns the characters of an anime.
func (c *Client) Characters(ctx context.Context, id int) Result {
	return c.get(ctx, fmt.Sprintf("/anime/%d/characters", id), nil)
}

// Recommendations returns recommendations derived from an anime.
func (c *Client) Recommendations(ctx context.Context, id int) Result {
	return c.get(ctx, fmt.Sprintf("/anime/%d/recommendations", id), nil)
}

// Videos returns the promotional videos and episodes of an anime.
func (c *Client) Videos(ctx context.Context, id int) Result {
	return c.get(ctx, fmt.Sprintf("/anime/%d/videos", id), nil)
}

// get waits for a limiter slot, issues the request and unwraps the data
// envelope. A single failed attempt is not retried.
func (c *Client) get(ctx context.Context, path string, query url.Values) Result {
	if err := c.limiter.Wait(ctx); err != nil {
		return c.fail(path, err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return c.fail(path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.fail(path, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return c.fail(path, fmt.Errorf("decode envelope: %w", err))
	}
	return Result{Data: env.Data}
}

func (c *Client) fail(path string, err error) Result {
	c.log.Error().Err(err).Str("path", path).Msg("upstream request failed")
	return Result{Err: err}
}
