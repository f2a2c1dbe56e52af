package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"bookdesk/internal/actions"
	"bookdesk/internal/bookrental"
	"bookdesk/internal/prefs"
	"bookdesk/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewBooks View = iota
	ViewRentals
)

// mode represents what currently owns keyboard input.
type mode int

const (
	modeBrowse mode = iota
	modeAddBook
	modeEditBook
	modeRentBook
	modeConfirm
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Coordinator *actions.Coordinator
	Store       *state.Store
	ThemeName   string
	PrefsPath   string
	Tick        time.Duration
}

const defaultTick = 250 * time.Millisecond

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	coord     *actions.Coordinator
	store     *state.Store
	prefsPath string
	tick      time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	view     View
	mode     mode
	showHelp bool
	spin     spinner.Model

	// Data state
	snapshot state.Snapshot

	// Cursors
	bookCursor   int
	rentalCursor int

	// Form state, one record per form
	addForm       bookForm
	editForm      bookForm
	editingBookID int64
	rentForm      rentalForm

	// Pending delete confirmation
	confirm confirmState

	// In-flight mutation guard: further mutations are ignored until the
	// current action and its follow-up refreshes settle.
	busy bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = defaultTick
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Paper"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		coord:     opts.Coordinator,
		store:     opts.Store,
		prefsPath: prefsPath,
		tick:      tick,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		view:      ViewBooks,
		mode:      modeBrowse,
		spin:      sp,
		addForm:   newBookForm(false),
		rentForm:  newRentalForm(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.spin.Tick,
		tickCmd(m.tick),
	}
	// Load both collections immediately on start.
	if m.coord != nil {
		cmds = append(cmds, refreshAllCmd(m.ctx, m.coord, m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.snapshot = m.store.Snapshot()
		m.clampCursors()
		return m, tickCmd(m.tick)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.clampCursors()
		return m, nil

	case mutationMsg:
		return m.handleMutationDone(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey routes keyboard input to whatever owns it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch m.mode {
	case modeConfirm:
		return m.handleConfirmKey(msg)
	case modeAddBook, modeEditBook:
		return m.handleBookFormKey(msg)
	case modeRentBook:
		return m.handleRentalFormKey(msg)
	}

	return m.handleBrowseKey(msg)
}

// handleBrowseKey processes keyboard input outside forms and modals.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.SwitchView):
		if m.view == ViewBooks {
			m.view = ViewRentals
		} else {
			m.view = ViewBooks
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.busy {
			return m, nil
		}
		return m, refreshAllCmd(m.ctx, m.coord, m.store)

	case key.Matches(msg, m.keys.DismissError):
		m.store.ClearError()
		m.snapshot = m.store.Snapshot()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.setCursor(0)
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.setCursor(m.cursorMax())
		return m, nil

	case key.Matches(msg, m.keys.AddBook):
		if m.view != ViewBooks || m.busy {
			return m, nil
		}
		m.addForm = newBookForm(false)
		m.mode = modeAddBook
		return m, nil

	case key.Matches(msg, m.keys.EditBook):
		if m.view != ViewBooks || m.busy {
			return m, nil
		}
		return m.startEdit()

	case key.Matches(msg, m.keys.RentBook):
		if m.busy {
			return m, nil
		}
		m.rentForm = newRentalForm()
		m.mode = modeRentBook
		return m, nil

	case key.Matches(msg, m.keys.MarkReturned):
		if m.view != ViewRentals || m.busy {
			return m, nil
		}
		return m.startMarkReturned()

	case key.Matches(msg, m.keys.Delete):
		if m.busy {
			return m, nil
		}
		return m.startDelete()
	}

	return m, nil
}

// startEdit moves the selected book into the editing state. Starting an
// edit while another book is being edited simply overwrites the shared
// editing id and discards the prior unsaved form.
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	book := m.selectedBook()
	if book == nil {
		return m, nil
	}
	m.editingBookID = book.ID
	m.editForm = newEditForm(*book)
	m.mode = modeEditBook
	return m, nil
}

func (m Model) startMarkReturned() (tea.Model, tea.Cmd) {
	rental := m.selectedRental()
	if rental == nil || !rental.Active() {
		return m, nil
	}
	id := rental.ID
	m.busy = true
	coord, ctx := m.coord, m.ctx
	return m, func() tea.Msg {
		return mutationMsg{ok: coord.MarkReturned(ctx, id)}
	}
}

func (m Model) handleMutationDone(msg mutationMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.snapshot = m.store.Snapshot()
	m.clampCursors()

	if msg.ok {
		switch m.mode {
		case modeAddBook:
			m.addForm = newBookForm(false)
		case modeEditBook:
			m.editingBookID = 0
		case modeRentBook:
			m.rentForm = newRentalForm()
		}
		m.mode = modeBrowse
		return m, nil
	}

	// Failed confirms return to browsing; failed form submissions keep
	// the form open with its values so the user can retry or cancel.
	if m.mode == modeConfirm {
		m.mode = modeBrowse
	}
	return m, nil
}

// selectedBook returns the book under the cursor, or nil.
func (m Model) selectedBook() *bookrental.Book {
	if m.bookCursor < 0 || m.bookCursor >= len(m.snapshot.Books) {
		return nil
	}
	b := m.snapshot.Books[m.bookCursor]
	return &b
}

// selectedRental returns the rental under the cursor in display order
// (active first, then returned), or nil.
func (m Model) selectedRental() *bookrental.Rental {
	ordered := m.orderedRentals()
	if m.rentalCursor < 0 || m.rentalCursor >= len(ordered) {
		return nil
	}
	r := ordered[m.rentalCursor]
	return &r
}

// orderedRentals returns rentals in display order: active, then returned.
func (m Model) orderedRentals() []bookrental.Rental {
	active, returned := state.PartitionRentals(m.snapshot.Rentals)
	return append(active, returned...)
}

// availableBooks is the derived view backing the rental form's picker.
func (m Model) availableBooks() []bookrental.Book {
	return state.AvailableBooks(m.snapshot.Books)
}

func (m *Model) moveCursor(delta int) {
	m.setCursor(m.cursor() + delta)
}

func (m *Model) cursor() int {
	if m.view == ViewBooks {
		return m.bookCursor
	}
	return m.rentalCursor
}

func (m *Model) cursorMax() int {
	if m.view == ViewBooks {
		return len(m.snapshot.Books) - 1
	}
	return len(m.snapshot.Rentals) - 1
}

func (m *Model) setCursor(pos int) {
	max := m.cursorMax()
	if pos > max {
		pos = max
	}
	if pos < 0 {
		pos = 0
	}
	if m.view == ViewBooks {
		m.bookCursor = pos
	} else {
		m.rentalCursor = pos
	}
}

func (m *Model) clampCursors() {
	if m.bookCursor >= len(m.snapshot.Books) {
		m.bookCursor = len(m.snapshot.Books) - 1
	}
	if m.bookCursor < 0 {
		m.bookCursor = 0
	}
	if m.rentalCursor >= len(m.snapshot.Rentals) {
		m.rentalCursor = len(m.snapshot.Rentals) - 1
	}
	if m.rentalCursor < 0 {
		m.rentalCursor = 0
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// mutationMsg reports that a mutation and its follow-up refreshes settled.
type mutationMsg struct {
	ok bool
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func refreshAllCmd(ctx context.Context, coord *actions.Coordinator, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		coord.RefreshAll(ctx)
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
