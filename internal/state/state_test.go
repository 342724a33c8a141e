package state

import (
	"errors"
	"testing"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/poster"
)

func loadedState(t *testing.T, text string) State {
	t.Helper()
	records, _ := catalog.Parse(text, poster.DefaultNamer())
	return Apply(New(""), Loaded{Records: records})
}

func titles(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Title)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApply_LoadedThenSearch(t *testing.T) {
	s := loadedState(t, "Alpha\tPlotA\nBeta\tPlotB\n")
	if s.Phase != Ready {
		t.Fatalf("Phase = %v, want ready", s.Phase)
	}
	if got := titles(s.Cards()); !equalStrings(got, []string{"Alpha", "Beta"}) {
		t.Fatalf("cards = %v, want [Alpha Beta]", got)
	}

	s = Apply(s, QueryChanged{Query: "al"})
	if got := titles(s.Cards()); !equalStrings(got, []string{"Alpha"}) {
		t.Fatalf("cards after search = %v, want [Alpha]", got)
	}
	if len(s.Records) != 2 {
		t.Fatalf("search must not mutate records; len = %d", len(s.Records))
	}
}

func TestFilter(t *testing.T) {
	records := []catalog.Record{
		{Title: "The Matrix"},
		{Title: "Heat", Plot: "matrix is mentioned only in the plot"},
		{Title: "The Thing"},
	}
	cases := []struct {
		query string
		want  []string
	}{
		{"", []string{"The Matrix", "Heat", "The Thing"}},
		{"matrix", []string{"The Matrix"}},
		{"THE", []string{"The Matrix", "The Thing"}},
		{"tHiNg", []string{"The Thing"}},
		{"zzz", nil},
	}
	for _, tc := range cases {
		got := Filter(records, tc.query)
		names := make([]string, 0, len(got))
		for _, r := range got {
			names = append(names, r.Title)
		}
		if !equalStrings(names, tc.want) {
			t.Fatalf("Filter(%q) = %v, want %v", tc.query, names, tc.want)
		}
	}
}

func TestFilter_EmptyQueryReturnsCopy(t *testing.T) {
	records := []catalog.Record{{Title: "A"}, {Title: "B"}}
	got := Filter(records, "")
	got[0].Title = "changed"
	if records[0].Title != "A" {
		t.Fatal("Filter should not alias the input slice")
	}
}

func TestApply_LoadFailedIsTerminal(t *testing.T) {
	s := Apply(New(""), LoadFailed{Err: &catalog.LoadError{Kind: catalog.BadStatus, Code: 404}})
	if s.Phase != Failed {
		t.Fatalf("Phase = %v, want failed", s.Phase)
	}
	if s.Placeholder() != PlaceholderError {
		t.Fatalf("Placeholder = %v, want error", s.Placeholder())
	}
	if n := len(s.Cards()); n != 0 {
		t.Fatalf("cards = %d, want 0", n)
	}
	// A late success must not revive the session.
	s = Apply(s, Loaded{Records: []catalog.Record{{Title: "A", PosterPath: "a.jpg"}}})
	if s.Phase != Failed || len(s.Cards()) != 0 {
		t.Fatalf("Failed should be terminal; got phase %v with %d cards", s.Phase, len(s.Cards()))
	}
	var loadErr *catalog.LoadError
	if !errors.As(s.Err, &loadErr) || loadErr.Code != 404 {
		t.Fatalf("Err = %v, want LoadError 404", s.Err)
	}
}

func TestPlaceholder(t *testing.T) {
	if p := New("").Placeholder(); p != PlaceholderLoading {
		t.Fatalf("loading placeholder = %v", p)
	}
	empty := Apply(New(""), Loaded{})
	if p := empty.Placeholder(); p != PlaceholderEmptyCatalog {
		t.Fatalf("empty catalog placeholder = %v", p)
	}
	s := loadedState(t, "Alpha\tPlotA\n")
	if p := s.Placeholder(); p != PlaceholderNone {
		t.Fatalf("ready placeholder = %v", p)
	}
	s = Apply(s, QueryChanged{Query: "nothing"})
	if p := s.Placeholder(); p != PlaceholderNoResults {
		t.Fatalf("no results placeholder = %v", p)
	}
	// An empty catalog stays the empty-catalog condition under any search.
	empty = Apply(empty, QueryChanged{Query: "x"})
	if p := empty.Placeholder(); p != PlaceholderEmptyCatalog {
		t.Fatalf("empty catalog with query placeholder = %v", p)
	}
}

func TestApply_CardActivatedUsesCapturedFields(t *testing.T) {
	s := loadedState(t, "Alpha\tPlotA\nBeta\tPlotB\n")
	cards := s.Cards()
	beta := cards[1]

	// Search changes after render must not affect the captured card.
	s = Apply(s, QueryChanged{Query: "alpha"})
	s = Apply(s, CardActivated{Card: beta})

	if !s.Modal.Visible {
		t.Fatal("modal should be visible")
	}
	if s.Modal.Record.Title != "Beta" || s.Modal.Record.Plot != "PlotB" {
		t.Fatalf("modal record = %#v, want Beta/PlotB", s.Modal.Record)
	}
	if s.Modal.Poster.Src != "movie_posters/Beta.jpg" {
		t.Fatalf("modal poster = %q, want movie_posters/Beta.jpg", s.Modal.Poster.Src)
	}
}

func TestApply_CardActivatedIgnoresIncompleteCard(t *testing.T) {
	s := loadedState(t, "Alpha\tPlotA\n")
	s = Apply(s, CardActivated{Card: Card{Title: " ", Poster: "x.jpg"}})
	if s.Modal.Visible {
		t.Fatal("modal opened for a card without title")
	}
	s = Apply(s, CardActivated{Card: Card{Title: "A"}})
	if s.Modal.Visible {
		t.Fatal("modal opened for a card without poster")
	}
	if Apply(New(""), CardActivated{Card: Card{Title: "A", Poster: "a.jpg"}}).Modal.Visible {
		t.Fatal("modal opened while loading")
	}
}

func TestApply_EveryDismissalClosesAndClearsPoster(t *testing.T) {
	for _, trigger := range []Trigger{CloseControl, OutsideClick, EscapeKey} {
		t.Run(trigger.String(), func(t *testing.T) {
			s := loadedState(t, "Alpha\tPlotA\n")
			s = Apply(s, CardActivated{Card: s.Cards()[0]})
			if !s.Modal.Visible || s.Modal.Poster.Src == "" {
				t.Fatalf("modal not open: %+v", s.Modal)
			}
			s = Apply(s, ModalDismissed{Trigger: trigger})
			if s.Modal.Visible {
				t.Fatal("modal still visible")
			}
			if s.Modal.Poster.Src != "" {
				t.Fatalf("poster src = %q, want cleared", s.Modal.Poster.Src)
			}
		})
	}
}

func TestApply_PosterFailedSubstitutesOnce(t *testing.T) {
	s := loadedState(t, "Alpha\tPlotA\n")
	s = Apply(s, CardActivated{Card: s.Cards()[0]})

	// A stale failure for some other source is ignored.
	s = Apply(s, PosterFailed{Src: "movie_posters/Other.jpg"})
	if s.Modal.Poster.Src != "movie_posters/Alpha.jpg" {
		t.Fatalf("stale failure changed src to %q", s.Modal.Poster.Src)
	}

	s = Apply(s, PosterFailed{Src: "movie_posters/Alpha.jpg"})
	if s.Modal.Poster.Src != poster.DefaultFallback {
		t.Fatalf("src = %q, want fallback", s.Modal.Poster.Src)
	}
	s = Apply(s, PosterFailed{Src: poster.DefaultFallback})
	if s.Modal.Poster.Src != poster.DefaultFallback || s.Modal.Poster.Armed() {
		t.Fatalf("fallback failure re-triggered: %+v", s.Modal.Poster)
	}

	s = Apply(s, ModalDismissed{Trigger: EscapeKey})
	s = Apply(s, PosterFailed{Src: ""})
	if s.Modal.Poster.Src != "" {
		t.Fatalf("closed modal poster = %q, want empty", s.Modal.Poster.Src)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	before := loadedState(t, "Alpha\tPlotA\n")
	after := Apply(before, CardActivated{Card: before.Cards()[0]})
	if before.Modal.Visible {
		t.Fatal("Apply mutated its input state")
	}
	_ = Apply(after, ModalDismissed{Trigger: CloseControl})
	if !after.Modal.Visible || after.Modal.Poster.Src == "" {
		t.Fatal("dismissal mutated the previous state")
	}
}
