package network

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"go.uber.org/zap"
)

// Loader resolves a page target to its markup text. Targets with an
// http or https scheme are fetched over the network; everything else
// is read as a local file path.
type Loader struct {
	client *Client
	log    *zap.Logger
}

// NewLoader creates a loader around an HTTP client. A nil logger
// disables logging.
func NewLoader(client *Client, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{client: client, log: log}
}

// Load returns the markup text for target.
func (l *Loader) Load(ctx context.Context, target string) (string, error) {
	if isHTTP(target) {
		l.log.Debug("fetching page", zap.String("url", target))
		body, err := l.client.Get(ctx, target)
		if err != nil {
			return "", fmt.Errorf("failed to fetch %s: %w", target, err)
		}
		l.log.Debug("fetched page", zap.String("url", target), zap.Int("bytes", len(body)))
		return string(body), nil
	}

	l.log.Debug("reading local page", zap.String("path", target))
	content, err := os.ReadFile(target)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", target, err)
	}
	return string(content), nil
}

func isHTTP(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
