// Package catalog loads the layer catalog from a local JSON file or an
// HTTP(S) URL.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/bsubei/squadrot/internal/domain/layer"
)

const defaultTimeout = 10 * time.Second

// Source knows where the catalog lives and how to fetch it. URL takes
// precedence over path when both are configured.
type Source struct {
	path   string
	url    string
	client *http.Client
}

// Option applies a configuration option to the Source.
type Option func(*Source)

// WithPath sets the local catalog file path.
func WithPath(path string) Option {
	return func(s *Source) { s.path = path }
}

// WithURL sets the catalog URL.
func WithURL(url string) Option {
	return func(s *Source) { s.url = url }
}

// WithHTTPClient sets a custom HTTP client for URL fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Source) {
		if client != nil {
			s.client = client
		}
	}
}

// WithTimeout bounds URL fetches.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.client.Timeout = d
		}
	}
}

// New creates a catalog Source with configuration options.
func New(opts ...Option) *Source {
	s := &Source{
		client: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches and decodes the catalog into typed layers. The result is
// treated as read-only by the rest of the run; the builder works on its own
// shrinking copy.
func (s *Source) Load(ctx context.Context) ([]layer.Layer, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case s.url != "":
		data, err = s.fetch(ctx)
	case s.path != "":
		data, err = os.ReadFile(s.path)
	default:
		return nil, fmt.Errorf("%w: no catalog path or URL configured", ErrLoad)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return Decode(data)
}

func (s *Source) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create catalog request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Decode parses catalog JSON: a top-level array of layer records. A record
// that is not an object, or that is missing the required attributes,
// rejects the whole catalog.
func Decode(data []byte) ([]layer.Layer, error) {
	var records []any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	layers := make([]layer.Layer, 0, len(records))
	for i, rec := range records {
		obj, ok := rec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: record %d is not an object", ErrDecode, i)
		}
		l, err := layer.New(obj)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrDecode, i, err)
		}
		layers = append(layers, l)
	}
	return layers, nil
}
