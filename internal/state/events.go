package state

import (
	"strings"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/poster"
)

// Event is an input to Apply.
type Event interface {
	isEvent()
}

// Trigger identifies how the modal was dismissed.
type Trigger int

const (
	CloseControl Trigger = iota
	OutsideClick
	EscapeKey
)

func (t Trigger) String() string {
	switch t {
	case OutsideClick:
		return "outside-click"
	case EscapeKey:
		return "escape"
	default:
		return "close"
	}
}

type (
	// Loaded carries the parsed catalog.
	Loaded struct{ Records []catalog.Record }
	// LoadFailed carries the fetch error.
	LoadFailed struct{ Err error }
	// QueryChanged carries the full search text.
	QueryChanged struct{ Query string }
	// CardActivated opens the modal for a rendered card.
	CardActivated struct{ Card Card }
	// ModalDismissed closes the modal.
	ModalDismissed struct{ Trigger Trigger }
	// PosterFailed reports that the modal poster at Src could not load.
	PosterFailed struct{ Src string }
)

func (Loaded) isEvent()         {}
func (LoadFailed) isEvent()     {}
func (QueryChanged) isEvent()   {}
func (CardActivated) isEvent()  {}
func (ModalDismissed) isEvent() {}
func (PosterFailed) isEvent()   {}

// Apply is the only transition function. It returns the next state and
// leaves s untouched.
func Apply(s State, ev Event) State {
	switch ev := ev.(type) {
	case Loaded:
		if s.Phase != Loading {
			return s
		}
		records := make([]catalog.Record, len(ev.Records))
		copy(records, ev.Records)
		s.Phase = Ready
		s.Records = records
		s.Err = nil

	case LoadFailed:
		if s.Phase != Loading {
			return s
		}
		s.Phase = Failed
		s.Records = nil
		s.Err = ev.Err
		s.Modal = ModalState{}

	case QueryChanged:
		s.Query = ev.Query

	case CardActivated:
		if s.Phase != Ready {
			return s
		}
		card := ev.Card
		if strings.TrimSpace(card.Title) == "" || strings.TrimSpace(card.Poster) == "" {
			return s
		}
		s.Modal = ModalState{
			Visible: true,
			Record:  catalog.Record{Title: card.Title, Plot: card.Plot, PosterPath: card.Poster},
			Poster:  poster.NewImage(card.Poster, card.Title, s.Fallback),
		}

	case ModalDismissed:
		if !s.Modal.Visible {
			return s
		}
		s.Modal.Visible = false
		s.Modal.Record = catalog.Record{}
		s.Modal.Poster.Clear()

	case PosterFailed:
		if !s.Modal.Visible || ev.Src == "" || s.Modal.Poster.Src != ev.Src {
			return s
		}
		s.Modal.Poster.Fail()
	}
	return s
}
