package hevy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/hevystats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultTimeout = 30 * time.Second

var ErrNoAPIKey = errors.New("hevy api key not set")

// APIError is returned for non 2xx upstream responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hevy api: status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client with a traced transport when httpClient is nil.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// ListWorkouts fetches one page of workouts and normalizes it.
func (c *Client) ListWorkouts(ctx context.Context, page, pageSize int) (_ *Page, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.client.listWorkouts")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("page", page), attribute.Int("page_size", pageSize))

	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))
	reqURL := fmt.Sprintf("%s/v1/workouts?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("accept", "application/json")

	log.Debugf("hevy: fetching workouts page %d (size %d)", page, pageSize)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(respBytes),
		}
	}

	return ParsePage(respBytes)
}

// ParsePage decodes a raw workouts page. Numbers are kept as json.Number so
// ids and numeric strings survive unchanged.
func ParsePage(data []byte) (*Page, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode workouts page: %w", err)
	}

	return normalizePage(raw), nil
}
