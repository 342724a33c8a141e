package ui

// Screen rows above and below the grid.
const (
	headerRows = 1
	searchRows = 1
	gapRows    = 1
	footerRows = 1

	gridTop = headerRows + searchRows + gapRows
)

// Card geometry.
const (
	// cardHeight is the outer height: border, title, price, poster, border.
	cardHeight = 5

	// minCardWidth is the narrowest card before a column is dropped.
	minCardWidth = 24

	// cardGap is the number of blank columns between cards.
	cardGap = 1
)

// Modal geometry.
const (
	modalMaxWidth = 72
	modalMargin   = 2
	modalPadX     = 2
	modalPadY     = 1

	// modalChrome is the border plus padding on one side.
	modalChromeX = 1 + modalPadX
	modalChromeY = 1 + modalPadY

	minPlotHeight = 3
)

const closeLabel = "[ Close ]"
