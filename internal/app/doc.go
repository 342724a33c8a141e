// Package app is the composition root for Marquee.
//
// # Overview
//
// Run wires configuration, logging, the catalog loader, the poster prober
// and one of two front ends:
//
//  1. Load ~/.config/marquee/config.toml (or the -config path)
//  2. Apply command line overrides for the catalog and log file
//  3. Open the log file, or discard logs when none is configured
//  4. Build a catalog.Loader over a file or HTTP source
//  5. Either export the grid as HTML, or start the TUI
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read config.toml
//	       ├─────> newLogger()        slog text handler to the log file
//	       ├─────> catalog.Loader{}   One fetch of the catalog
//	       │
//	       ├── -export ──> Export()   Load, filter, web.Render() to file
//	       └── default ──> ui.Run()   Bubble Tea program (blocks)
//
// In TUI mode the catalog fetch happens inside the program as a command, so
// the grid shows "Loading catalog..." until it completes. Export loads
// synchronously since there is nothing to show in the meantime.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid TOML
//   - Log file cannot be opened
//   - Export file cannot be written
//
// A catalog that cannot be loaded is not fatal: both front ends show
// "Error loading movies: ..." in place of the grid.
package app
