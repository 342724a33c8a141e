package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/poster"
)

// Config captures where the catalog and its poster assets live.
type Config struct {
	Catalog        string
	PosterRoot     string
	PosterExt      string
	FallbackPoster string
	Price          string
	ShowPrice      bool
	LogFile        string
}

const (
	defaultConfigPath = "~/.config/marquee/config.toml"
	defaultCatalog    = "Movies.txt"
	defaultPrice      = "$5.00"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Catalog:        defaultCatalog,
		PosterRoot:     poster.DefaultRoot,
		PosterExt:      poster.DefaultExt,
		FallbackPoster: poster.DefaultFallback,
		Price:          defaultPrice,
		ShowPrice:      true,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Catalog        string `toml:"catalog"`
		PosterRoot     string `toml:"poster_root"`
		PosterExt      string `toml:"poster_ext"`
		FallbackPoster string `toml:"fallback_poster"`
		Price          string `toml:"price"`
		ShowPrice      *bool  `toml:"show_price"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if location := strings.TrimSpace(raw.Catalog); location != "" {
		cfg.Catalog = location
		if !catalog.IsURL(location) {
			cfg.Catalog = mustExpand(location)
		}
	}
	cfg.PosterRoot = orDefault(raw.PosterRoot, poster.DefaultRoot)
	cfg.PosterExt = strings.TrimPrefix(orDefault(raw.PosterExt, poster.DefaultExt), ".")
	cfg.FallbackPoster = orDefault(raw.FallbackPoster, poster.DefaultFallback)
	cfg.Price = orDefault(raw.Price, defaultPrice)
	if raw.ShowPrice != nil {
		cfg.ShowPrice = *raw.ShowPrice
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

// Namer returns the poster namer for this configuration.
func (c Config) Namer() poster.Namer {
	return poster.Namer{Root: c.PosterRoot, Ext: c.PosterExt}
}

// AssetDir returns the directory poster paths are resolved against for a
// local catalog: the directory containing the catalog file.
func (c Config) AssetDir() string {
	if catalog.IsURL(c.Catalog) || strings.TrimSpace(c.Catalog) == "" {
		return "."
	}
	return filepath.Dir(c.Catalog)
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath expands a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
