package main

import (
	"log"
	"time"

	"github.com/andareed/tickdown/clipboard"
	"github.com/andareed/tickdown/countdown"
	"github.com/andareed/tickdown/dialogs"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeView mode = iota
	modeInput
)

// tickMsg carries the sequence it was scheduled under so ticks armed
// before a pause or reset can be recognised and dropped.
type tickMsg struct{ seq int }

type model struct {
	engine *countdown.Engine
	input  textinput.Model // the raw duration text; reset re-parses it
	// started is what the current run counted down from, for the banner
	started countdown.Duration
	dialog  dialogs.Dialog
	ui      uiState
}

func newModel(initial countdown.Duration, n countdown.Notifier) *model {
	ti := textinput.New()
	ti.Placeholder = "MM:SS or HH:MM:SS"
	ti.CharLimit = 9
	ti.Width = 12
	ti.SetValue(initial.String())

	return &model{
		engine: countdown.New(initial, n),
		input:  ti,
	}
}

func (m *model) Init() tea.Cmd {
	log.Println("tickdown: Initialised")
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.ready = true
		return m, nil
	case tickMsg:
		return m.handleTick(msg)
	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil
	case dialogs.DismissedMsg:
		// banner gone; the engine stays Completed until reset
		m.dialog = nil
		return m, nil
	}

	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// a visible dialog owns the keyboard
	if m.dialog != nil && m.dialog.IsVisible() {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		if m.dialog != nil && !m.dialog.IsVisible() {
			m.dialog = nil
		}
		return m, cmd
	}

	switch m.ui.mode {
	case modeView:
		return m.handleViewModeKey(msg)
	case modeInput:
		return m.handleInputModeKey(msg)
	}

	return m, nil
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.StartPause):
		return m, m.toggleRunning()

	case key.Matches(msg, Keys.Pause):
		m.pause()
		return m, nil

	case key.Matches(msg, Keys.Reset):
		m.reset()
		return m, nil

	case key.Matches(msg, Keys.EditInput):
		if m.engine.Status() == countdown.Running {
			log.Println("Edit refused while running")
			return m, m.startNotice("Pause before editing", "warn", noticeDuration)
		}
		m.ui.mode = modeInput
		log.Println("Entering Mode: Input (Duration Box)")
		return m, m.input.Focus()

	case key.Matches(msg, Keys.Preset):
		idx := int(msg.String()[0] - '1')
		return m, m.applyPreset(countdown.Presets[idx])

	case key.Matches(msg, Keys.Copy):
		remaining := m.engine.Remaining().String()
		if err := clipboard.Copy(remaining); err != nil {
			return m, m.startNotice("Copy failed", "error", noticeDuration)
		}
		return m, m.startNotice("Copied "+remaining, "success", noticeDuration)

	case key.Matches(msg, Keys.OpenHelp):
		m.dialog = dialogs.NewHelpDialog(Keys.Legend())
		return m, nil
	}

	return m, nil
}

// handleInputModeKey feeds keys to the duration box and re-parses the
// text on every change. The engine only takes the value while idle.
func (m *model) handleInputModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.ui.mode = modeView
		m.input.Blur()
		log.Printf("Leaving input mode with text %q", m.input.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.engine.Set(countdown.Parse(m.input.Value()))
	return m, cmd
}

func (m *model) toggleRunning() tea.Cmd {
	if m.engine.Status() == countdown.Running {
		m.pause()
		return nil
	}
	if m.engine.Status() == countdown.Completed {
		return m.startNotice("Reset to run again", "warn", noticeDuration)
	}
	if !m.engine.Start() {
		log.Println("Start refused on zero duration")
		return m.startNotice("Nothing to count down", "warn", noticeDuration)
	}
	m.started = m.engine.Remaining()
	m.ui.tickSeq++
	log.Printf("Started from %s (tick seq %d)", m.started, m.ui.tickSeq)
	return m.scheduleTick()
}

func (m *model) pause() {
	if m.engine.Status() != countdown.Running {
		return
	}
	m.engine.Pause()
	m.ui.tickSeq++ // any outstanding tick is now stale
	log.Printf("Paused at %s", m.engine.Remaining())
}

// reset re-derives the duration from the current input text and clears
// any completion state, banner included.
func (m *model) reset() {
	m.engine.Reset(countdown.Parse(m.input.Value()))
	m.ui.tickSeq++
	m.dialog = nil
	log.Printf("Reset to %s", m.engine.Remaining())
}

func (m *model) applyPreset(d countdown.Duration) tea.Cmd {
	if !m.engine.Set(d) {
		log.Printf("Preset %s ignored (status %s)", d, m.engine.Status())
		return m.startNotice("Preset ignored while running", "warn", noticeDuration)
	}
	m.input.SetValue(d.String())
	log.Printf("Preset %s applied", d)
	return nil
}

func (m *model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.ui.tickSeq {
		log.Printf("Stale tick seq %d dropped (current %d)", msg.seq, m.ui.tickSeq)
		return m, nil
	}

	m.engine.Tick()

	switch m.engine.Status() {
	case countdown.Running:
		return m, m.scheduleTick()
	case countdown.Completed:
		log.Println("Countdown complete; raising banner")
		m.ui.tickSeq++
		m.dialog = dialogs.NewCompleteDialog(m.started.String())
	}
	return m, nil
}

// scheduleTick arms the next one-second tick. Each tick is scheduled
// independently, so drift is not compensated.
func (m *model) scheduleTick() tea.Cmd {
	seq := m.ui.tickSeq
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{seq: seq} })
}
