// Package state holds the catalog view as an explicit value and the single
// transition function that changes it.
//
// # Overview
//
// The view has a lifecycle phase and an orthogonal modal sub-state:
//
//	Loading ──Loaded──────> Ready(records) ──QueryChanged──> Ready(filtered view)
//	   │
//	   └──LoadFailed──> Failed (terminal, zero cards, no retry)
//
//	Modal: Closed ──CardActivated──> Open(record) ──ModalDismissed──> Closed
//
// Every input, whether a load result, a key press, a mouse click or a poster
// failure, is turned into an Event and passed to Apply. Renderers read State
// and never mutate it.
//
// # Core Types
//
// State:
//   - Records: the catalog in source order, fixed after Loaded
//   - Query: current search text
//   - Modal: visibility, the record captured from the activated card, and
//     its poster slot
//
// Card:
//   - Built fresh by State.Cards on every render
//   - Carries title, plot and poster path captured at render time, so
//     activating a card never re-derives anything from the current search
//
// # Filtering
//
// Filter is a case-insensitive substring match on titles only. It is O(n)
// per call and its result is never stored; catalogs are small.
//
// # Placeholders
//
// An empty catalog and a search with no matches are separate conditions
// (PlaceholderEmptyCatalog and PlaceholderNoResults) even though a renderer
// may style them alike. A failed load shows PlaceholderError.
//
// # Modal Dismissal
//
// CloseControl, OutsideClick and EscapeKey all close the modal the same way:
// the captured record is dropped and the poster source is cleared so the next
// open never flashes the previous poster.
//
// # Concurrency
//
// State is a plain value with no locks. The UI owns exactly one copy and only
// replaces it from its event loop.
package state
