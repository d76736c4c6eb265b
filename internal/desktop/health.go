package desktop

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultHealthTimeout  = 20 * time.Second
	DefaultHealthInterval = 300 * time.Millisecond
)

var ErrHealthTimeout = errors.New("backend health check timed out")

// WaitHealthy polls url until it answers with a 2xx or 3xx status or the
// timeout passes.
func WaitHealthy(ctx context.Context, url string, timeout, interval time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultHealthTimeout
	}
	if interval <= 0 {
		interval = DefaultHealthInterval
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := &http.Client{
		Timeout: interval * 4,
		// a redirect already means the server is up
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	defer client.CloseIdleConnections()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	attempt := 0
	for {
		attempt++
		ok, err := checkHealth(ctx, client, url)
		if ok {
			log.Debugf("backend healthy after %d attempt(s)", attempt)
			return nil
		}
		log.Tracef("health attempt %d: %v", attempt, err)

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w after %s (%d attempts)", ErrHealthTimeout, timeout, attempt)
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func checkHealth(ctx context.Context, client *http.Client, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		return true, nil
	}
	return false, fmt.Errorf("status %d", resp.StatusCode)
}
