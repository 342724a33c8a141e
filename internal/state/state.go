package state

import (
	"strings"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/poster"
)

// Phase is the catalog lifecycle.
type Phase int

const (
	Loading Phase = iota
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "loading"
	}
}

// Placeholder names the message shown instead of cards.
type Placeholder int

const (
	PlaceholderNone Placeholder = iota
	PlaceholderLoading
	PlaceholderError
	PlaceholderEmptyCatalog
	PlaceholderNoResults
)

// ModalState is the single reusable detail overlay.
type ModalState struct {
	Visible bool
	Record  catalog.Record
	Poster  poster.Image
}

// Card is one rendered record. Its fields are captured when the card set is
// built so activation never consults the current search.
type Card struct {
	Index  int // position in the filtered view
	Title  string
	Plot   string
	Poster string
}

// State is the whole application state. Records are fixed after Loaded; the
// filtered view is derived on demand and never stored.
type State struct {
	Phase    Phase
	Records  []catalog.Record
	Query    string
	Modal    ModalState
	Err      error
	Fallback string
}

// New returns a state in the Loading phase.
func New(fallback string) State {
	if strings.TrimSpace(fallback) == "" {
		fallback = poster.DefaultFallback
	}
	return State{Phase: Loading, Fallback: fallback}
}

// Filter returns the records whose title contains query, ignoring case. An
// empty query matches everything. Order is preserved.
func Filter(records []catalog.Record, query string) []catalog.Record {
	if query == "" {
		out := make([]catalog.Record, len(records))
		copy(out, records)
		return out
	}
	needle := strings.ToLower(query)
	out := make([]catalog.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Visible returns the current filtered view. It is empty unless Ready.
func (s State) Visible() []catalog.Record {
	if s.Phase != Ready {
		return nil
	}
	return Filter(s.Records, s.Query)
}

// Cards builds a fresh card set for the filtered view.
func (s State) Cards() []Card {
	visible := s.Visible()
	cards := make([]Card, 0, len(visible))
	for i, r := range visible {
		cards = append(cards, Card{
			Index:  i,
			Title:  r.Title,
			Plot:   r.Plot,
			Poster: r.PosterPath,
		})
	}
	return cards
}

// Placeholder reports which placeholder replaces the grid, if any.
func (s State) Placeholder() Placeholder {
	switch s.Phase {
	case Loading:
		return PlaceholderLoading
	case Failed:
		return PlaceholderError
	}
	if len(s.Records) == 0 {
		return PlaceholderEmptyCatalog
	}
	if len(s.Visible()) == 0 {
		return PlaceholderNoResults
	}
	return PlaceholderNone
}
