package web

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/poster"
	"github.com/five82/marquee/internal/state"
)

func readyState(t *testing.T, text, query string) state.State {
	t.Helper()
	records, _ := catalog.Parse(text, poster.DefaultNamer())
	st := state.Apply(state.New(""), state.Loaded{Records: records})
	return state.Apply(st, state.QueryChanged{Query: query})
}

func render(t *testing.T, p Page) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		t.Fatalf("Render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse rendered page: %v", err)
	}
	return doc
}

func visiblePlaceholder(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("p.no-movies-found:not([hidden])").Text())
}

func TestRender_Cards(t *testing.T) {
	doc := render(t, Page{
		State:     readyState(t, "Alpha\tPlotA\nBeta\tPlot\twith tab\n", ""),
		Price:     "$5.00",
		ShowPrice: true,
	})

	cards := doc.Find("div.movie-card")
	if cards.Length() != 2 {
		t.Fatalf("cards = %d, want 2", cards.Length())
	}

	first := cards.First()
	if got, _ := first.Attr("data-title"); got != "Alpha" {
		t.Fatalf("data-title = %q, want %q", got, "Alpha")
	}
	if got, _ := first.Attr("data-poster"); got != "movie_posters/Alpha.jpg" {
		t.Fatalf("data-poster = %q, want %q", got, "movie_posters/Alpha.jpg")
	}
	if got := first.Find("p.movie-price").Text(); got != "$5.00" {
		t.Fatalf("price = %q, want %q", got, "$5.00")
	}
	img := first.Find("img")
	if got, _ := img.Attr("alt"); got != "Alpha Poster" {
		t.Fatalf("alt = %q, want %q", got, "Alpha Poster")
	}
	if got, _ := img.Attr("data-fallback"); got != poster.DefaultFallback {
		t.Fatalf("data-fallback = %q, want %q", got, poster.DefaultFallback)
	}
	onerror, _ := img.Attr("onerror")
	if !strings.Contains(onerror, "this.onerror=null") {
		t.Fatalf("onerror = %q, want it to disarm itself", onerror)
	}

	if got, _ := cards.Eq(1).Attr("data-plot"); got != "Plot\twith tab" {
		t.Fatalf("data-plot = %q, want embedded tab kept", got)
	}
	if visiblePlaceholder(doc) != "" {
		t.Fatal("no placeholder should be visible when cards are shown")
	}
}

func TestRender_QueryMatchesGrid(t *testing.T) {
	st := readyState(t, "Alpha\tPlotA\nBeta\tPlotB\nAlphaville\tPlotC\n", "ALPHA")
	doc := render(t, Page{State: st})

	var titles []string
	doc.Find("div.movie-card").Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, s.AttrOr("data-title", ""))
	})
	if got := strings.Join(titles, ","); got != "Alpha,Alphaville" {
		t.Fatalf("titles = %q, want %q", got, "Alpha,Alphaville")
	}
	if got := doc.Find("#movie-search").AttrOr("value", ""); got != "ALPHA" {
		t.Fatalf("search value = %q, want %q", got, "ALPHA")
	}
}

func TestRender_Placeholders(t *testing.T) {
	tests := []struct {
		name string
		st   state.State
		want string
	}{
		{
			name: "empty_catalog",
			st:   readyState(t, "\n\n", ""),
			want: "No movies found. Please add titles",
		},
		{
			name: "no_results",
			st:   readyState(t, "Alpha\tPlotA\n", "zzz"),
			want: "No movies found matching your search.",
		},
		{
			name: "loading",
			st:   state.New(""),
			want: "Loading catalog...",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := render(t, Page{State: tt.st})
			if n := doc.Find("div.movie-card").Length(); n != 0 {
				t.Fatalf("cards = %d, want 0", n)
			}
			if got := visiblePlaceholder(doc); !strings.HasPrefix(got, tt.want) {
				t.Fatalf("placeholder = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestRender_LoadError(t *testing.T) {
	loadErr := &catalog.LoadError{Kind: catalog.BadStatus, Code: 404, Locator: "Movies.txt", Err: errors.New("not found")}
	st := state.Apply(state.New(""), state.LoadFailed{Err: loadErr})
	doc := render(t, Page{State: st})

	if n := doc.Find("div.movie-card").Length(); n != 0 {
		t.Fatalf("cards = %d, want 0", n)
	}
	got := doc.Find("p.error-message").Text()
	if !strings.HasPrefix(got, "Error loading movies: ") {
		t.Fatalf("error message = %q", got)
	}
}

func TestRender_ModalAndPrice(t *testing.T) {
	doc := render(t, Page{State: readyState(t, "Alpha\tPlotA\n", ""), Price: "$5.00", ShowPrice: true})
	modal := doc.Find("#movie-modal")
	if modal.Length() != 1 {
		t.Fatal("page should carry exactly one modal")
	}
	if modal.Find(".close-button").Length() != 1 {
		t.Fatal("modal should have a close button")
	}
	if got := modal.Find("#modal-movie-price").AttrOr("data-price", ""); got != "$5.00" {
		t.Fatalf("modal price = %q, want %q", got, "$5.00")
	}

	hidden := render(t, Page{State: readyState(t, "Alpha\tPlotA\n", ""), Price: "$5.00"})
	if hidden.Find("p.movie-price").Length() != 0 || hidden.Find("#modal-movie-price").Length() != 0 {
		t.Fatal("price should be omitted when ShowPrice is false")
	}
}

func TestRender_EscapesCatalogText(t *testing.T) {
	doc := render(t, Page{State: readyState(t, "<b>Bold</b> & \"Quoted\"\t<script>x</script>\n", "")})
	card := doc.Find("div.movie-card")
	if got := card.AttrOr("data-title", ""); got != `<b>Bold</b> & "Quoted"` {
		t.Fatalf("data-title = %q", got)
	}
	if doc.Find("div.movie-card b").Length() != 0 {
		t.Fatal("title markup must be escaped")
	}
}
