// Package overpass queries an Overpass API interpreter for business nodes around a point.
package overpass

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"bizfinder/internal/models"
)

// DefaultURL is the public Overpass interpreter endpoint.
const DefaultURL = "https://overpass-api.de/api/interpreter"

// DefaultTimeout is the server-side query timeout in seconds.
const DefaultTimeout = 25

// response is the subset of the Overpass JSON output we read.
type response struct {
	Elements []element `json:"elements"`
}

type element struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// Option configures the client.
type Option func(*Client)

// WithURL sets the interpreter endpoint.
func WithURL(u string) Option {
	return func(c *Client) {
		c.endpoint = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithQueryTimeout sets the server-side timeout placed in the query, in seconds.
func WithQueryTimeout(seconds int) Option {
	return func(c *Client) {
		if seconds > 0 {
			c.queryTimeout = seconds
		}
	}
}

// Client issues radius queries against an Overpass interpreter.
type Client struct {
	endpoint     string
	userAgent    string
	queryTimeout int
	httpClient   *http.Client
}

// NewClient creates a client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:     DefaultURL,
		userAgent:    "web-scraper-app",
		queryTimeout: DefaultTimeout,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Nearby returns every named shop or amenity node within radiusMiles of lat/lon.
// Any failure discards the whole response.
func (c *Client) Nearby(ctx context.Context, lat, lon float64, radiusMiles int) ([]models.Place, error) {
	radiusMeters := float64(radiusMiles) * models.MetersPerMile
	query := BuildQuery(lat, lon, radiusMeters, c.queryTimeout)

	reqURL := c.endpoint + "?" + url.Values{"data": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: build request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, eris.Errorf("overpass: interpreter returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: read body")
	}

	var out response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, eris.Wrap(err, "overpass: parse response")
	}

	places := make([]models.Place, 0, len(out.Elements))
	for _, el := range out.Elements {
		if el.Type != "" && el.Type != "node" {
			continue
		}
		places = append(places, models.PlaceFromTags(el.ID, el.Lat, el.Lon, el.Tags))
	}

	zap.L().Debug("overpass: query complete",
		zap.Int("radius_miles", radiusMiles),
		zap.Int("elements", len(out.Elements)),
		zap.Int("places", len(places)),
	)

	return places, nil
}
