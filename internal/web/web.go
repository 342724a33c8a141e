package web

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/five82/marquee/internal/poster"
	"github.com/five82/marquee/internal/state"
)

//go:embed page.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

const defaultTitle = "Movie Catalog"

// Page is everything the exported page shows.
type Page struct {
	Title     string
	State     state.State
	Price     string
	ShowPrice bool
}

type cardView struct {
	Title  string
	Plot   string
	Poster string
	Alt    string
}

type pageView struct {
	Title       string
	Query       string
	Price       string
	ShowPrice   bool
	Fallback    string
	Cards       []cardView
	Placeholder string
	Error       string
}

// Render writes the page for p. The cards are exactly the ones the state's
// current query leaves visible.
func Render(w io.Writer, p Page) error {
	view := pageView{
		Title:     p.Title,
		Query:     p.State.Query,
		Price:     p.Price,
		ShowPrice: p.ShowPrice && p.Price != "",
		Fallback:  p.State.Fallback,
	}
	if view.Title == "" {
		view.Title = defaultTitle
	}
	if view.Fallback == "" {
		view.Fallback = poster.DefaultFallback
	}

	switch p.State.Placeholder() {
	case state.PlaceholderLoading:
		view.Placeholder = "Loading catalog..."
	case state.PlaceholderError:
		view.Error = fmt.Sprintf("Error loading movies: %v", p.State.Err)
	case state.PlaceholderEmptyCatalog:
		view.Placeholder = "No movies found. Please add titles and plots to the catalog and ensure correct formatting (Title<TAB>Plot)."
	case state.PlaceholderNoResults:
		view.Placeholder = "No movies found matching your search."
	}

	for _, c := range p.State.Cards() {
		img := poster.NewImage(c.Poster, c.Title, view.Fallback)
		view.Cards = append(view.Cards, cardView{
			Title:  c.Title,
			Plot:   c.Plot,
			Poster: img.Src,
			Alt:    img.Alt,
		})
	}

	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
