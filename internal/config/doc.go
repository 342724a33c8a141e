// Package config loads Marquee's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Catalog: Movies.txt (relative to the working directory)
//   - Poster root: movie_posters
//   - Poster extension: jpg
//   - Fallback poster: movie_posters/unavailable.jpg
//   - Price: $5.00, shown
//   - Log file: none (logging discarded)
//
// # TOML Format
//
//	catalog = "~/movies/Movies.txt"   # or "https://example.com/Movies.txt"
//	poster_root = "movie_posters"
//	poster_ext = "jpg"
//	fallback_poster = "movie_posters/unavailable.jpg"
//	price = "$5.00"
//	show_price = true
//	log_file = "~/.local/state/marquee/marquee.log"
//
// Every field is optional. Tilde expansion applies to a local catalog path
// and the log file; URLs are used as-is.
//
// # Poster Resolution
//
// Poster paths are relative. For a local catalog they resolve against the
// directory holding the catalog file (AssetDir); for a URL catalog they
// resolve against the catalog URL.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors (wrapped with "parse config").
package config
