package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/poster"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

var errNoLoader = errors.New("no catalog loader configured")

// Loader fetches the catalog once.
type Loader interface {
	Load(ctx context.Context) ([]catalog.Record, error)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Loader    Loader
	Prober    poster.Prober
	Logger    *slog.Logger
	Fallback  string
	Price     string
	ShowPrice bool
	ThemeName string
	Columns   int
	PrefsPath string
}

// Model is the Bubble Tea model. All catalog and modal state lives in st and
// is only ever replaced through state.Apply.
type Model struct {
	ctx       context.Context
	loader    Loader
	prober    poster.Prober
	logger    *slog.Logger
	prefsPath string
	price     string
	showPrice bool

	st state.State

	search textinput.Model
	plot   viewport.Model
	help   help.Model
	keys   keyMap
	theme  Theme

	columns  int // preferred; 0 fits to width
	width    int
	height   int
	ready    bool
	cursor   int
	offset   int // first visible grid row
	showHelp bool

	// posters caches probe outcomes per asset path for the session.
	posters map[string]posterStatus
}

// New creates the model in the Loading phase.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "type to filter by title"
	ti.CharLimit = 256
	ti.Focus()

	return Model{
		ctx:       ctx,
		loader:    opts.Loader,
		prober:    opts.Prober,
		logger:    logger,
		prefsPath: prefsPath,
		price:     opts.Price,
		showPrice: opts.ShowPrice && strings.TrimSpace(opts.Price) != "",
		st:        state.New(opts.Fallback),
		search:    ti,
		plot:      viewport.New(0, 0),
		help:      help.New(),
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.ThemeName),
		columns:   opts.Columns,
		posters:   make(map[string]posterStatus),
	}
}

// State returns the current application state.
func (m Model) State() state.State {
	return m.st
}

// Init implements tea.Model. The catalog fetch is the only suspension point.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalog(), textinput.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = max(msg.Width-len(m.search.Prompt)-1, 1)
		m.help.Width = msg.Width
		m.sizePlot()
		m.ensureCursorVisible()
		return m, m.probeVisible()

	case catalogMsg:
		return m.handleCatalog(msg)

	case posterMsg:
		return m.handlePoster(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.st.Modal.Visible {
		return m.renderModal()
	}
	return m.renderMain()
}

func (m Model) handleCatalog(msg catalogMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.st = state.Apply(m.st, state.LoadFailed{Err: msg.err})
		return m, nil
	}
	m.st = state.Apply(m.st, state.Loaded{Records: msg.records})
	m.cursor, m.offset = 0, 0
	return m, m.probeVisible()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.st.Modal.Visible {
		return m.handleModalKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Columns: m.columns}); err != nil {
			m.logger.Warn("save prefs failed", "error", err)
		}
		return m, nil
	case key.Matches(msg, m.keys.Open):
		return m.activate(m.cursor)
	case key.Matches(msg, m.keys.ClearSearch):
		if m.search.Value() == "" {
			return m, nil
		}
		m.search.SetValue("")
		cmd := m.setQuery("")
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.gridColumns())
		return m, m.probeVisible()
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.gridColumns())
		return m, m.probeVisible()
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
		return m, m.probeVisible()
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
		return m, m.probeVisible()
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.st.Visible()))
		return m, m.probeVisible()
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.st.Visible()))
		return m, m.probeVisible()
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.gridColumns() * m.visibleRows())
		return m, m.probeVisible()
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.gridColumns() * m.visibleRows())
		return m, m.probeVisible()
	}

	// Everything else edits the search text.
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		probe := m.setQuery(after)
		return m, tea.Batch(cmd, probe)
	}
	return m, cmd
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.dismiss(state.EscapeKey)
		return m, nil
	case key.Matches(msg, m.keys.Close):
		m.dismiss(state.CloseControl)
		return m, nil
	}
	var cmd tea.Cmd
	m.plot, cmd = m.plot.Update(msg)
	return m, cmd
}

// handleMouse maps left clicks to card activation and modal dismissal.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	if m.st.Modal.Visible {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			switch m.modalLayout().hit(msg.X, msg.Y) {
			case hitClose:
				m.dismiss(state.CloseControl)
			case hitOutside:
				m.dismiss(state.OutsideClick)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.plot, cmd = m.plot.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		if idx, ok := m.cardAt(msg.X, msg.Y); ok {
			m.cursor = idx
			return m.activate(idx)
		}
	case tea.MouseButtonWheelUp:
		m.moveCursor(-m.gridColumns())
		return m, m.probeVisible()
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.gridColumns())
		return m, m.probeVisible()
	}
	return m, nil
}

// setQuery applies a new search string. The card set is rebuilt from
// scratch, so the cursor and scroll position start over.
func (m *Model) setQuery(query string) tea.Cmd {
	m.st = state.Apply(m.st, state.QueryChanged{Query: query})
	m.cursor, m.offset = 0, 0
	return m.probeVisible()
}

// activate opens the modal for the card at idx in the current card set.
func (m Model) activate(idx int) (tea.Model, tea.Cmd) {
	cards := m.st.Cards()
	if idx < 0 || idx >= len(cards) {
		return m, nil
	}
	card := cards[idx]
	m.st = state.Apply(m.st, state.CardActivated{Card: card})
	if !m.st.Modal.Visible {
		m.logger.Error("card is missing data", "index", idx, "title", card.Title, "poster", card.Poster)
		return m, nil
	}
	m.logger.Info("modal opened", "title", card.Title, "poster", card.Poster)

	m.sizePlot()
	m.plot.SetContent(m.plotText())
	m.plot.GotoTop()
	return m, m.probeModalPoster(m.st.Modal.Poster.Src)
}

func (m *Model) dismiss(trigger state.Trigger) {
	title := m.st.Modal.Record.Title
	m.st = state.Apply(m.st, state.ModalDismissed{Trigger: trigger})
	m.plot.SetContent("")
	m.logger.Info("modal closed", "title", title, "trigger", trigger.String())
}

func (m *Model) moveCursor(delta int) {
	total := len(m.st.Visible())
	if total == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), total-1)
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	cols := m.gridColumns()
	rows := m.visibleRows()
	row := m.cursor / cols
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+rows {
		m.offset = row - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Messages

type catalogMsg struct {
	records []catalog.Record
	err     error
}

// Commands

func (m Model) loadCatalog() tea.Cmd {
	loader := m.loader
	ctx := m.ctx
	return func() tea.Msg {
		if loader == nil {
			return catalogMsg{err: &catalog.LoadError{Kind: catalog.Unreachable, Err: errNoLoader}}
		}
		records, err := loader.Load(ctx)
		return catalogMsg{records: records, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
