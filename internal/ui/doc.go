// Package ui provides the Bubble Tea terminal interface for Marquee.
//
// # Overview
//
// The screen has four parts:
//
//	MARQUEE  42 movies  3 matches  Nightfox      header
//	Search: mat█                                  search box (always focused)
//
//	╭──────────────╮ ╭──────────────╮             card grid
//	│The Matrix    │ │The Matrix Re…│
//	│$5.00         │ │$5.00         │
//	│✓ The_Matrix… │ │✗ unavailable…│
//	╰──────────────╯ ╰──────────────╯
//	enter details • esc clear search • f1 help    footer
//
// Activating a card (enter, or a left click) replaces the grid with a detail
// modal showing title, price, poster path and a scrollable plot.
//
// # State
//
// Model keeps one state.State value. Every input is converted to a
// state.Event and applied with state.Apply; View only reads. UI-local
// concerns (cursor, scroll offset, theme, viewport scroll) live on Model.
//
// # Commands
//
//   - loadCatalog: the single catalog fetch, issued by Init
//   - probeCmd: fire-and-forget poster checks, one per visible card and one
//     for the modal poster; results arrive as posterMsg
//
// # Input
//
// Printable keys always edit the search text while the modal is closed, so
// navigation uses arrows, home/end and page keys. The modal closes on esc,
// on x/enter or a click on the close control, and on a click outside the box.
//
// # Posters
//
// A terminal cannot show the images, so each card lists its poster file
// with a marker: · unchecked, ✓ found, ✗ fallback substituted. A failed
// probe substitutes the fallback once per slot and never re-probes it for
// cards; the modal gives the fallback a single check whose failure is
// ignored by the disarmed slot.
package ui
