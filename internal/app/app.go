package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/poster"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/ui"
	"github.com/five82/marquee/internal/web"
)

// Options configure the Marquee application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
	Catalog    string // file path or http(s) URL
	ExportPath string // write an HTML page here instead of starting the TUI
	Search     string // initial query for the export
	LogPath    string
}

// Run loads the configuration and either exports the catalog as HTML or
// runs the TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	loader := catalog.Loader{
		Source: catalog.NewSource(cfg.Catalog),
		Namer:  cfg.Namer(),
		Logger: logger,
	}

	if strings.TrimSpace(opts.ExportPath) != "" {
		return Export(ctx, loader, cfg, opts.Search, opts.ExportPath)
	}

	prober, err := newProber(cfg)
	if err != nil {
		return err
	}
	userPrefs := prefs.Load(opts.PrefsPath)

	logger.Info("starting", "catalog", cfg.Catalog)
	return ui.Run(ui.Options{
		Context:   ctx,
		Loader:    loader,
		Prober:    prober,
		Logger:    logger,
		Fallback:  cfg.FallbackPoster,
		Price:     cfg.Price,
		ShowPrice: cfg.ShowPrice,
		ThemeName: userPrefs.Theme,
		Columns:   userPrefs.Columns,
		PrefsPath: opts.PrefsPath,
	})
}

// Export loads the catalog synchronously and writes the HTML page for query
// to path. A failed load still produces a page showing the error.
func Export(ctx context.Context, loader ui.Loader, cfg config.Config, query, path string) error {
	st := state.New(cfg.FallbackPoster)
	records, err := loader.Load(ctx)
	if err != nil {
		st = state.Apply(st, state.LoadFailed{Err: err})
	} else {
		st = state.Apply(st, state.Loaded{Records: records})
		st = state.Apply(st, state.QueryChanged{Query: query})
	}

	resolved, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("export path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	file, err := os.Create(resolved)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	page := web.Page{State: st, Price: cfg.Price, ShowPrice: cfg.ShowPrice}
	if err := web.Render(file, page); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}
	return nil
}

func applyOverrides(cfg *config.Config, opts Options) error {
	if c := strings.TrimSpace(opts.Catalog); c != "" {
		if catalog.IsURL(c) {
			cfg.Catalog = c
		} else {
			expanded, err := config.ExpandPath(c)
			if err != nil {
				return fmt.Errorf("catalog path: %w", err)
			}
			cfg.Catalog = expanded
		}
	}
	if l := strings.TrimSpace(opts.LogPath); l != "" {
		expanded, err := config.ExpandPath(l)
		if err != nil {
			return fmt.Errorf("log path: %w", err)
		}
		cfg.LogFile = expanded
	}
	return nil
}

// newLogger opens the log file in append mode. The terminal belongs to the
// TUI, so without a log file everything is discarded.
func newLogger(path string) (*slog.Logger, func(), error) {
	if strings.TrimSpace(path) == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newTextLogger(file), func() { _ = file.Close() }, nil
}

func newTextLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newProber checks posters next to a local catalog, or relative to the
// catalog URL when it is remote.
func newProber(cfg config.Config) (poster.Prober, error) {
	if catalog.IsURL(cfg.Catalog) {
		prober, err := poster.NewHTTPProber(cfg.Catalog, nil)
		if err != nil {
			return nil, fmt.Errorf("init poster prober: %w", err)
		}
		return prober, nil
	}
	return poster.FileProber{Dir: cfg.AssetDir()}, nil
}
