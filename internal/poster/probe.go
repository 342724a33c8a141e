package poster

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Prober checks whether a poster asset can be loaded.
type Prober interface {
	Probe(ctx context.Context, path string) error
}

var (
	_ Prober = FileProber{}
	_ Prober = (*HTTPProber)(nil)
)

// FileProber resolves poster paths against a local directory.
type FileProber struct {
	Dir string
}

// Probe stats the asset and fails for missing files and directories.
func (p FileProber) Probe(_ context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("poster path is empty")
	}
	full := filepath.FromSlash(path)
	if !filepath.IsAbs(full) {
		full = filepath.Join(p.Dir, full)
	}
	info, err := os.Stat(full)
	if err != nil {
		return fmt.Errorf("stat poster: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("poster %s is a directory", path)
	}
	return nil
}

const (
	probeTimeout     = 5 * time.Second
	defaultUserAgent = "marquee/0.1"
)

// HTTPProber issues HEAD requests for posters relative to a base URL,
// normally the catalog URL itself.
type HTTPProber struct {
	base      *url.URL
	http      *http.Client
	userAgent string
}

// NewHTTPProber builds a prober resolving paths against base.
func NewHTTPProber(base string, client *http.Client) (*HTTPProber, error) {
	parsed, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return nil, fmt.Errorf("parse poster base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("poster base url %q must be absolute", base)
	}
	if client == nil {
		client = &http.Client{Timeout: probeTimeout}
	}
	return &HTTPProber{base: parsed, http: client, userAgent: defaultUserAgent}, nil
}

// Probe reports an error for transport failures and non-2xx statuses.
func (p *HTTPProber) Probe(ctx context.Context, path string) error {
	if p == nil {
		return fmt.Errorf("prober is nil")
	}
	rel, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse poster path: %w", err)
	}
	target := p.base.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("poster %s returned status %d", target.Path, resp.StatusCode)
	}
	return nil
}
