package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hanoi/internal/colormap"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// Tick rate bounds for the speed keys.
const (
	minTickRate = 1
	maxTickRate = 30
)

// plannedMove is one step of the precomputed solution.
type plannedMove struct {
	src, dst int
}

// Model is the Bubble Tea model for the solve viewer.
type Model struct {
	layers   int
	cm       colormap.Colormap
	board    *hanoi.Board
	moves    <-chan plannedMove
	cancel   chan struct{}
	store    *storage.Store
	tickRate int
	paused   bool
	done     bool
	saved    bool
	err      error
	started  time.Time

	keys     KeyMap
	help     help.Model
	progress progress.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a viewer for a board of the given size. The move
// sequence is produced by the solver on a background goroutine and
// consumed one move per tick, so even huge boards need constant memory.
func NewModel(layers int, cm colormap.Colormap, store *storage.Store, tickRate int) (Model, error) {
	if tickRate < minTickRate {
		tickRate = minTickRate
	}

	board, err := hanoi.New(layers, cm)
	if err != nil {
		return Model{}, err
	}

	cancel := make(chan struct{})
	m := Model{
		layers:   layers,
		cm:       cm,
		board:    board,
		moves:    planMoves(layers, cancel),
		cancel:   cancel,
		store:    store,
		tickRate: tickRate,
		started:  time.Now(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}
	return m, nil
}

// planMoves runs the planner on its own goroutine and streams the moves.
// The channel is closed once the full sequence has been emitted or the
// cancel channel is closed, so abandoned plans do not leak the goroutine.
func planMoves(layers int, cancel <-chan struct{}) <-chan plannedMove {
	ch := make(chan plannedMove, 64)
	go func() {
		defer close(ch)
		//nolint:errcheck // The only emit error is our own cancellation.
		hanoi.Plan(layers, func(src, dst int) error {
			select {
			case ch <- plannedMove{src: src, dst: dst}:
				return nil
			case <-cancel:
				return errPlanCancelled
			}
		})
	}()
	return ch
}

var errPlanCancelled = errors.New("tui: plan cancelled")

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = clampProgressWidth(msg.Width)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func clampProgressWidth(w int) int {
	if w <= 0 {
		return 40
	}
	if w > 60 {
		return 60
	}
	if w < 10 {
		return 10
	}
	return w - 2
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		// Queued key events can still arrive after tea.Quit is returned;
		// only the first quit may close the cancel channel.
		if !m.quitting {
			m.quitting = true
			close(m.cancel)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if !m.done {
			m.paused = !m.paused
		}

	case key.Matches(msg, m.keys.Faster):
		if m.tickRate < maxTickRate {
			m.tickRate++
		}

	case key.Matches(msg, m.keys.Slower):
		if m.tickRate > minTickRate {
			m.tickRate--
		}

	case key.Matches(msg, m.keys.Restart):
		board, err := hanoi.New(m.layers, m.cm)
		if err != nil {
			m.err = err
			return m, nil
		}
		close(m.cancel)
		m.cancel = make(chan struct{})
		m.board = board
		m.moves = planMoves(m.layers, m.cancel)
		m.paused = false
		m.done = false
		m.saved = false
		m.err = nil
		m.started = time.Now()
	}

	return m, nil
}

// handleTick advances the animation by one move.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.done || m.err != nil {
		return m, tickCmd(m.tickRate)
	}

	mv, ok := <-m.moves
	if !ok {
		m.done = true
		m.saveRun()
		return m, tickCmd(m.tickRate)
	}

	if err := m.board.Move(mv.src, mv.dst); err != nil {
		m.err = err
		return m, tickCmd(m.tickRate)
	}

	if m.board.Solved() {
		m.done = true
		m.saveRun()
	}
	return m, tickCmd(m.tickRate)
}

// saveRun records the completed solve once. Storage is optional; a nil
// store means history was unavailable and the animation just plays.
func (m *Model) saveRun() {
	if m.saved || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, viewer continues regardless
	m.store.SaveRun(m.layers, m.board.Moves(), time.Since(m.started))
	m.saved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ratio := float64(m.board.Moves()) / float64(m.board.TotalMoves())

	var status string
	switch {
	case m.err != nil:
		status = errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	case m.done:
		status = doneStyle.Render("Solved!")
	case m.paused:
		status = pausedStyle.Render("Paused")
	default:
		status = headerStyle.Render(fmt.Sprintf("%d moves/s", m.tickRate))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.board),
		"",
		renderBoard(m.board),
		"",
		m.progress.ViewAs(ratio),
		status,
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for a local terminal.
func Run(layers int, cm colormap.Colormap, store *storage.Store, tickRate int) error {
	model, err := NewModel(layers, cm, store, tickRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
