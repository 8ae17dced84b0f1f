// Package amadeus implements the fast search backend against the
// Amadeus flight-offers API. Results are cheap and broad but carry no
// award pricing; the deep backend supplies that fidelity.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jackzhaolt/plane-ticket-query/core/search"
	"github.com/jackzhaolt/plane-ticket-query/core/types"
	"github.com/jackzhaolt/plane-ticket-query/internal/errors"
	"github.com/jackzhaolt/plane-ticket-query/internal/logging"
)

const (
	defaultBaseURL = "https://test.api.amadeus.com"

	// minRequestInterval throttles route-pair queries to stay inside
	// the API quota
	minRequestInterval = 100 * time.Millisecond

	// maxOffersPerRoute caps result size per route pair
	maxOffersPerRoute = 50
)

// Config configures the Amadeus client
type Config struct {
	// APIKey is the Amadeus client ID
	APIKey string

	// APISecret is the Amadeus client secret
	APISecret string

	// BaseURL overrides the API endpoint, for tests
	BaseURL string

	// HTTPTimeout bounds each request
	HTTPTimeout time.Duration
}

// Client is the fast search backend
type Client struct {
	cfg        Config
	httpClient *http.Client

	token       string
	tokenExpiry time.Time

	lastRequest time.Time
}

// New creates a client. Missing credentials are a backend-unavailable
// condition: the caller decides whether to run without a fast backend.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New(errors.TypeBackend, "amadeus credentials not configured")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
	}, nil
}

// Search queries every departure/arrival pair in the query.
// A failed route pair is logged and skipped; the result is whatever
// succeeded.
func (c *Client) Search(ctx context.Context, q search.Query) ([]types.Flight, error) {
	var all []types.Flight

	for _, dep := range q.DepartureAirports {
		for _, arr := range q.ArrivalAirports {
			c.throttle()

			flights, err := c.searchRoute(ctx, dep, arr, q)
			if err != nil {
				logging.Warn("route query failed",
					zap.String("departure", dep),
					zap.String("arrival", arr),
					zap.Error(err))
				continue
			}

			logging.Debug("route query succeeded",
				zap.String("departure", dep),
				zap.String("arrival", arr),
				zap.Int("flights", len(flights)))
			all = append(all, flights...)
		}
	}

	return all, nil
}

// Close implements search.Searcher; the client holds no persistent
// connection state
func (c *Client) Close() error {
	return nil
}

func (c *Client) throttle() {
	elapsed := time.Since(c.lastRequest)
	if elapsed < minRequestInterval {
		time.Sleep(minRequestInterval - elapsed)
	}
	c.lastRequest = time.Now()
}

func (c *Client) searchRoute(ctx context.Context, departure, arrival string, q search.Query) ([]types.Flight, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("originLocationCode", departure)
	params.Set("destinationLocationCode", arrival)
	params.Set("departureDate", q.DepartureDate.Format(types.DateLayout))
	params.Set("adults", fmt.Sprintf("%d", q.Adults))
	params.Set("travelClass", travelClass(q.Cabin))
	params.Set("currencyCode", "USD")
	params.Set("max", fmt.Sprintf("%d", maxOffersPerRoute))
	if q.ReturnDate != nil {
		params.Set("returnDate", q.ReturnDate.Format(types.DateLayout))
	}

	endpoint := c.cfg.BaseURL + "/v2/shopping/flight-offers?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Backend("build flight-offers request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Backend("flight-offers request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Backend("read flight-offers response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.TypeBackend,
			"flight-offers request returned %d: %s", resp.StatusCode, truncate(body, 200))
	}

	return parseOffers(body, q)
}

// accessToken returns a valid OAuth token, refreshing when the cached
// one is within a minute of expiry
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.token != "" && time.Until(c.tokenExpiry) > time.Minute {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.APIKey)
	form.Set("client_secret", c.cfg.APISecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Backend("build token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Backend("token request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Backend("read token response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf(errors.TypeBackend,
			"token request returned %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", errors.Backend("decode token response", err)
	}

	c.token = payload.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second)
	return c.token, nil
}

// travelClass maps a cabin to the Amadeus travelClass parameter
func travelClass(cabin types.CabinClass) string {
	return strings.ToUpper(string(cabin))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
