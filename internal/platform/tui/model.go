package tui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Phase is the screen the model is showing.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseInstructions
	PhasePlaying
	PhasePaused
	PhaseLevelComplete
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseInstructions:
		return "instructions"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// inputBufferSize caps how many turns can be queued between ticks.
const inputBufferSize = 3

// Options configures a session. Zero values get defaults in NewModel.
type Options struct {
	Width      int // Board size including the border ring
	Height     int
	StartLevel int
	Endless    bool
	Seed       int64 // 0 = random based on time
	FPS        int
	Theme      render.Theme
	Logger     *log.Logger
	Clock      quartz.Clock
}

// Model is the Bubble Tea model for a snake session: menus and any number of games.
type Model struct {
	opts  Options
	phase Phase
	back  Phase // Where the instructions screen returns to

	game      *snake.State
	gameCount int
	completed int // Level just cleared, for the level-complete screen
	input     *core.InputBuffer
	pacer     *Pacer
	seeds     *rand.Rand
	logger    *log.Logger

	keys KeyMap
	help help.Model

	termW, termH int
	quitting     bool
	err          error
}

// NewModel creates a model on the start screen.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Theme == (render.Theme{}) {
		opts.Theme = render.DefaultTheme()
	}

	return Model{
		opts:   opts,
		phase:  PhaseStart,
		input:  core.NewInputBuffer(inputBufferSize),
		pacer:  NewPacer(opts.Clock),
		seeds:  rand.New(rand.NewSource(opts.Seed)),
		logger: opts.Logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.handleFrame()
		return m, frameCmd(m.opts.FPS)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit && m.phase != PhaseInstructions {
		m.quitting = true
		m.logger.Info("quit", "phase", m.phase)
		return m, tea.Quit
	}

	switch m.phase {
	case PhaseStart:
		if action == core.ActionInstructions {
			m.showInstructions()
			break
		}
		if err := m.newGame(); err != nil {
			m.err = err
			return m, tea.Quit
		}

	case PhaseInstructions:
		m.phase = m.back

	case PhasePlaying:
		// Decline and the other non-steering keys are ignored here.
		switch {
		case action == core.ActionPause:
			m.phase = PhasePaused
		case action.IsMove():
			m.input.Push(action)
		}

	case PhasePaused:
		if action == core.ActionPause {
			m.resume()
		}

	case PhaseLevelComplete:
		m.resume()

	case PhaseEnd:
		switch action {
		case core.ActionDecline:
			m.quitting = true
			m.logger.Info("quit", "phase", m.phase)
			return m, tea.Quit
		case core.ActionRestart:
			if err := m.newGame(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		case core.ActionInstructions:
			m.showInstructions()
		}
	}

	return m, nil
}

func (m *Model) showInstructions() {
	m.back = m.phase
	m.phase = PhaseInstructions
}

// resume returns to play with a full delay before the next move and
// without turns queued before the interruption.
func (m *Model) resume() {
	m.phase = PhasePlaying
	m.input.Clear()
	m.pacer.Reset()
}

func (m *Model) newGame() error {
	opts := []snake.Option{
		snake.WithRand(rand.New(rand.NewSource(m.seeds.Int63()))),
		snake.WithStartLevel(m.opts.StartLevel),
	}
	if m.opts.Endless {
		opts = append(opts, snake.WithEndless())
	}

	game, err := snake.New(m.opts.Width, m.opts.Height, opts...)
	if err != nil {
		return fmt.Errorf("tui: new game: %w", err)
	}
	m.game = game
	m.gameCount++
	m.logger.Info("game started", "game", m.gameCount, "level", game.Level(),
		"board", fmt.Sprintf("%dx%d", game.Width(), game.Height()), "endless", game.Endless())
	m.resume()
	return nil
}

// handleFrame advances the game when the level delay has passed.
// At most one queued turn is applied per tick.
func (m *Model) handleFrame() {
	if m.phase != PhasePlaying || m.game == nil || m.tooSmall() {
		return
	}
	if !m.pacer.Ready(m.game.Speed()) {
		return
	}

	if d, ok := actionDirection(m.input.Pop()); ok {
		m.game.ChangeDirection(d)
	}

	level := m.game.Level()
	ok, err := m.game.Update()
	if err != nil {
		m.logger.Error("game ended without room for food", "err", err)
	}

	switch {
	case !ok:
		m.phase = PhaseEnd
		m.logger.Info("game ended", "status", m.game.Status(), "cause", m.game.Cause(),
			"score", m.game.Score(), "level", m.game.Level())
	case m.game.Level() != level:
		m.completed = level
		m.phase = PhaseLevelComplete
		m.logger.Info("level complete", "level", level, "score", m.game.Score())
	}
}

// frameSize is the terminal area the playing screen needs.
func (m Model) frameSize() (int, int) {
	w, h := render.FrameSize(m.opts.Width, m.opts.Height, false)
	return w, h + 1 // help line
}

func (m Model) tooSmall() bool {
	if m.termW == 0 && m.termH == 0 {
		return false // size not reported yet
	}
	w, h := m.frameSize()
	return m.termW < w || m.termH < h
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.phase {
	case PhaseStart:
		body = startView(m.opts.Theme)
	case PhaseInstructions:
		body = instructionsView(m.opts.Theme)
	case PhasePlaying:
		if m.tooSmall() {
			w, h := m.frameSize()
			body = tooSmallView(w, h, m.termW, m.termH)
			break
		}
		body = RenderScreen(render.Frame(m.game, m.opts.Theme, "")) + "\n" + m.help.View(m.keys)
	case PhasePaused:
		body = pausedView(m.game)
	case PhaseLevelComplete:
		body = levelCompleteView(m.game, m.completed)
	case PhaseEnd:
		body = endView(m.game)
	}

	if m.termW == 0 || m.termH == 0 {
		return body
	}
	return lipgloss.Place(m.termW, m.termH, lipgloss.Center, lipgloss.Center, body)
}

// Phase returns the screen being shown.
func (m Model) Phase() Phase {
	return m.phase
}

// Game returns the current game, or nil before the first one starts.
func (m Model) Game() *snake.State {
	return m.game
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
