package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "http://127.0.0.1:8000"
	DefaultTimeout = 30 * time.Second

	cacheSize = 8 * 1024 * 1024
)

// how long a cached GET response stays fresh
const (
	typesStaleTime    = 60 * time.Second
	workoutsStaleTime = 10 * time.Second
	defaultStaleTime  = 30 * time.Second
)

// APIError is returned for every non 2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Body)
}

// Message returns the message field of a JSON error body, or the raw body.
func (e *APIError) Message() string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(e.Body), &body); err == nil && body.Message != "" {
		return body.Message
	}
	return e.Body
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *freecache.Cache
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		cache:      freecache.NewCache(cacheSize),
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ClearCache drops all cached responses.
func (c *Client) ClearCache() {
	c.cache.Clear()
}

func (c *Client) url(path string, query url.Values) string {
	if len(query) == 0 {
		return c.baseURL + path
	}
	return c.baseURL + path + "?" + query.Encode()
}

func (c *Client) do(ctx context.Context, method, reqURL string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, reqURL, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBytes)),
		}
	}

	return respBytes, nil
}

func decode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("unmarshal response: %w", err)
	}
	return v, nil
}

// getJSON serves from the cache while the entry is fresh.
func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values, staleTime time.Duration) (T, error) {
	reqURL := c.url(path, query)
	cacheKey := []byte(reqURL)

	if cached, err := c.cache.Get(cacheKey); err == nil {
		if v, err := decode[T](cached); err == nil {
			log.Tracef("cache hit: %s", reqURL)
			return v, nil
		}
	}

	respBytes, err := c.do(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		var zero T
		return zero, err
	}

	v, err := decode[T](respBytes)
	if err != nil {
		return v, err
	}

	if err := c.cache.Set(cacheKey, respBytes, int(staleTime.Seconds())); err != nil {
		log.Debugf("cache set %s: %s", reqURL, err)
	}
	return v, nil
}

// postJSON and patchJSON invalidate every cached response, even on failure.
func postJSON[T any](ctx context.Context, c *Client, path string, query url.Values, body any) (T, error) {
	return mutate[T](ctx, c, http.MethodPost, path, query, body)
}

func patchJSON[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return mutate[T](ctx, c, http.MethodPatch, path, nil, body)
}

func mutate[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	defer c.ClearCache()

	respBytes, err := c.do(ctx, method, c.url(path, query), body)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](respBytes)
}
