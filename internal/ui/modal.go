package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

type modalHit int

const (
	hitInside modalHit = iota
	hitOutside
	hitClose
)

// modalLayout is the on-screen geometry of the detail modal. Rendering and
// mouse hit-testing both derive from it.
type modalLayout struct {
	left, top     int
	width, height int // outer size, border included
	inner         int // content width
	plotHeight    int
	closeX        int
	closeY        int
}

// modalHeaderLines counts content lines above the plot: title, price,
// poster, alt text and a blank separator.
const modalHeaderLines = 5

// modalFooterLines counts content lines below the plot: blank, close control.
const modalFooterLines = 2

func (m Model) modalLayout() modalLayout {
	width := max(min(m.width-2*modalMargin, modalMaxWidth), 2*modalChromeX+len(closeLabel))
	inner := width - 2*modalChromeX

	fixed := 2*modalChromeY + modalHeaderLines + modalFooterLines
	maxPlot := max(m.height-2*modalMargin-fixed, minPlotHeight)
	plotLines := strings.Count(m.wrappedPlot(inner), "\n") + 1
	plotHeight := max(min(plotLines, maxPlot), 1)

	height := fixed + plotHeight
	l := modalLayout{
		width:      width,
		height:     height,
		inner:      inner,
		plotHeight: plotHeight,
		left:       max((m.width-width)/2, 0),
		top:        max((m.height-height)/2, 0),
	}
	l.closeX = l.left + modalChromeX
	l.closeY = l.top + modalChromeY + modalHeaderLines + plotHeight + modalFooterLines - 1
	return l
}

// hit classifies a screen cell relative to the modal box.
func (l modalLayout) hit(x, y int) modalHit {
	if x >= l.closeX && x < l.closeX+len(closeLabel) && y == l.closeY {
		return hitClose
	}
	if x < l.left || x >= l.left+l.width || y < l.top || y >= l.top+l.height {
		return hitOutside
	}
	return hitInside
}

func (m Model) wrappedPlot(width int) string {
	plot := m.st.Modal.Record.Plot
	if strings.TrimSpace(plot) == "" {
		plot = "No plot available."
	}
	// Tabs kept inside plots would throw off width math.
	plot = strings.ReplaceAll(plot, "\t", "    ")
	return wordwrap.String(plot, max(width, 1))
}

func (m Model) plotText() string {
	return m.wrappedPlot(m.modalLayout().inner)
}

// sizePlot fits the plot viewport to the current modal layout.
func (m *Model) sizePlot() {
	l := m.modalLayout()
	m.plot.Width = l.inner
	m.plot.Height = l.plotHeight
	if m.st.Modal.Visible {
		m.plot.SetContent(m.plotText())
	}
}

// renderModal renders the detail overlay centred on screen.
func (m Model) renderModal() string {
	styles := m.theme.Styles()
	l := m.modalLayout()
	modal := m.st.Modal

	fit := func(s string) string { return runewidth.Truncate(s, l.inner, "…") }

	price := ""
	if m.showPrice {
		price = styles.PriceText.Render(fit("Price: " + m.price))
	}
	alt := ""
	if modal.Poster.UsingFallback() {
		alt = styles.WarnText.Render(fit(modal.Poster.Alt))
	}

	lines := []string{
		styles.AccentText.Bold(true).Render(fit(modal.Record.Title)),
		price,
		styles.MutedText.Render(fit("Poster: " + modal.Poster.Src)),
		alt,
		"",
	}
	lines = append(lines, strings.Split(m.plot.View(), "\n")...)
	lines = append(lines, "", styles.Close.Render(closeLabel))

	box := styles.Modal.
		Width(l.inner + 2*modalPadX).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
	)
}
