package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/five82/marquee/internal/poster"
)

// LoadErrorKind classifies fetch failures.
type LoadErrorKind int

const (
	// Unreachable means the fetch itself could not complete.
	Unreachable LoadErrorKind = iota
	// BadStatus means the transport answered with a non-success status.
	BadStatus
)

func (k LoadErrorKind) String() string {
	switch k {
	case BadStatus:
		return "bad status"
	default:
		return "unreachable"
	}
}

// LoadError is returned by Load when the catalog cannot be fetched.
type LoadError struct {
	Kind    LoadErrorKind
	Code    int // set for BadStatus
	Locator string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Kind == BadStatus {
		return fmt.Sprintf("load %s: status %d", e.Locator, e.Code)
	}
	if e.Err == nil {
		return fmt.Sprintf("load %s: unreachable", e.Locator)
	}
	return fmt.Sprintf("load %s: %v", e.Locator, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Source fetches the raw catalog bytes.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Locator() string
}

var (
	_ Source = FileSource{}
	_ Source = HTTPSource{}
)

// NewSource picks an HTTP source for http(s) locators and a file source
// otherwise.
func NewSource(locator string) Source {
	trimmed := strings.TrimSpace(locator)
	if IsURL(trimmed) {
		return HTTPSource{URL: trimmed}
	}
	return FileSource{Path: trimmed}
}

// IsURL reports whether locator names an http or https resource.
func IsURL(locator string) bool {
	lower := strings.ToLower(strings.TrimSpace(locator))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// FileSource reads the catalog from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Locator() string { return s.Path }

func (s FileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &LoadError{Kind: Unreachable, Locator: s.Path, Err: err}
	}
	return data, nil
}

const (
	defaultUserAgent = "marquee/0.1"
	fetchTimeout     = 10 * time.Second
)

// HTTPSource fetches the catalog with a single GET.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Locator() string { return s.URL }

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &LoadError{Kind: Unreachable, Locator: s.URL, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{Kind: Unreachable, Locator: s.URL, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Kind: BadStatus, Code: resp.StatusCode, Locator: s.URL}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Kind: Unreachable, Locator: s.URL, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}

// Loader fetches and parses a catalog once.
type Loader struct {
	Source Source
	Namer  poster.Namer
	Logger *slog.Logger
}

// Load performs one fetch and parses the result. An empty catalog is not an
// error. Fetch failures are always returned as *LoadError.
func (l Loader) Load(ctx context.Context) ([]Record, error) {
	if l.Source == nil {
		return nil, &LoadError{Kind: Unreachable, Err: errors.New("no catalog source")}
	}
	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	data, err := l.Source.Fetch(ctx)
	if err != nil {
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			loadErr = &LoadError{Kind: Unreachable, Locator: l.Source.Locator(), Err: err}
		}
		logger.Error("catalog load failed", "locator", l.Source.Locator(), "kind", loadErr.Kind.String(), "error", loadErr)
		return nil, loadErr
	}

	records, malformed := Parse(string(data), l.Namer)
	for _, line := range malformed {
		logger.Warn("skipping malformed catalog line", "line", line.Number, "text", line.Text)
	}
	logger.Info("catalog loaded", "locator", l.Source.Locator(), "records", len(records), "skipped", len(malformed))
	return records, nil
}

// Load is shorthand for a Loader over NewSource(locator).
func Load(ctx context.Context, locator string, namer poster.Namer, logger *slog.Logger) ([]Record, error) {
	return Loader{Source: NewSource(locator), Namer: namer, Logger: logger}.Load(ctx)
}
