package ui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/marquee/internal/state"
)

// gridColumns returns how many cards fit side by side.
func (m Model) gridColumns() int {
	if m.columns > 0 {
		return m.columns
	}
	if m.width <= 0 {
		return 1
	}
	return max((m.width+cardGap)/(minCardWidth+cardGap), 1)
}

// cardWidth returns the outer width of one card, border included.
func (m Model) cardWidth() int {
	cols := m.gridColumns()
	return max((m.width-cardGap*(cols-1))/cols, 4)
}

// visibleRows returns how many card rows fit between the search box and the
// footer.
func (m Model) visibleRows() int {
	return max((m.height-gridTop-footerRows)/cardHeight, 1)
}

// cardAt maps a screen cell to an index in the current card set.
func (m Model) cardAt(x, y int) (int, bool) {
	if m.st.Placeholder() != state.PlaceholderNone || x < 0 || y < gridTop {
		return 0, false
	}
	row := (y - gridTop) / cardHeight
	if row >= m.visibleRows() {
		return 0, false
	}
	stride := m.cardWidth() + cardGap
	col := x / stride
	if col >= m.gridColumns() || x%stride >= m.cardWidth() {
		return 0, false
	}
	idx := (m.offset+row)*m.gridColumns() + col
	if idx >= len(m.st.Visible()) {
		return 0, false
	}
	return idx, true
}

// renderMain renders header, search box, grid and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	parts := []string{styles.Logo.Render("MARQUEE")}

	switch m.st.Phase {
	case state.Loading:
		parts = append(parts, styles.WarnText.Render("loading catalog"))
	case state.Failed:
		parts = append(parts, styles.DangerText.Render("catalog unavailable"))
	case state.Ready:
		total := len(m.st.Records)
		parts = append(parts, styles.MutedText.Render(fmt.Sprintf("%d %s", total, plural(total, "movie", "movies"))))
		if m.st.Query != "" {
			shown := len(m.st.Visible())
			parts = append(parts, styles.AccentText.Render(fmt.Sprintf("%d %s", shown, plural(shown, "match", "matches"))))
		}
	}
	parts = append(parts, styles.FaintText.Render(m.theme.Name))
	return strings.Join(parts, "  ")
}

// renderGrid renders the visible rows of cards, or the placeholder that
// replaces them.
func (m Model) renderGrid() string {
	height := m.visibleRows() * cardHeight
	if msg := m.placeholderText(); msg != "" {
		wrapped := lipgloss.NewStyle().
			Width(max(min(m.width-4, 80), 10)).
			Align(lipgloss.Center).
			Render(msg)
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, wrapped)
	}

	cards := m.st.Cards()
	cols := m.gridColumns()
	gap := strings.Repeat(" ", cardGap)

	var rows []string
	for r := 0; r < m.visibleRows(); r++ {
		start := (m.offset + r) * cols
		if start >= len(cards) {
			break
		}
		end := min(start+cols, len(cards))
		var rendered []string
		for i := start; i < end; i++ {
			if i > start {
				rendered = append(rendered, gap)
			}
			rendered = append(rendered, m.renderCard(cards[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.NewStyle().Height(height).Render(strings.Join(rows, "\n"))
}

// renderCard draws one card: title, optional price, poster file.
func (m Model) renderCard(card state.Card, focused bool) string {
	styles := m.theme.Styles()
	inner := m.cardWidth() - 2

	style := styles.Card
	if focused {
		style = styles.Focus
	}

	title := styles.Text.Bold(true).Render(runewidth.Truncate(card.Title, inner, "…"))
	price := ""
	if m.showPrice {
		price = styles.PriceText.Render(m.price)
	}

	img, status := m.cardImage(card)
	marker := styles.FaintText.Render("·")
	switch {
	case img.UsingFallback():
		marker = styles.WarnText.Render("✗")
	case status == posterOK:
		marker = styles.OKText.Render("✓")
	}
	file := runewidth.Truncate(path.Base(img.Src), max(inner-2, 1), "…")
	posterLine := marker + " " + styles.MutedText.Render(file)

	body := strings.Join([]string{title, price, posterLine}, "\n")
	return style.Width(inner).Height(cardHeight - 2).MaxHeight(cardHeight).Render(body)
}

func (m Model) placeholderText() string {
	styles := m.theme.Styles()
	switch m.st.Placeholder() {
	case state.PlaceholderLoading:
		return styles.MutedText.Render("Loading catalog...")
	case state.PlaceholderError:
		return styles.DangerText.Render(fmt.Sprintf("Error loading movies: %v", m.st.Err)) + "\n" +
			styles.MutedText.Render("Check that the catalog is correctly formatted and reachable.")
	case state.PlaceholderEmptyCatalog:
		return styles.MutedText.Render("No movies found. Please add titles and plots to the catalog and ensure correct formatting (Title<TAB>Plot).")
	case state.PlaceholderNoResults:
		return styles.MutedText.Render("No movies found matching your search.")
	}
	return ""
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
