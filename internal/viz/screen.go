package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/input"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/lesson"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/player"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/session"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	StatusReady   = "READY"
	StatusRunning = "RUNNING"
	StatusPaused  = "PAUSED"
	StatusDone    = "DONE"
	StatusReplay  = "REPLAY"
)

// tickMsg advances playback. Ticks from an older generation are stale: a
// pause, reset or reload bumps the generation and so cancels the pending
// step.
type tickMsg struct{ gen int }

// screen is one mounted lesson. All of its state is dropped when the user
// goes back to the menu.
type screen struct {
	lesson    lesson.Lesson
	cfg       *config.Config
	theme     Theme
	styles    Styles
	keys      keyMap
	help      help.Model
	observers []player.Observer

	presets []string
	preset  int
	dataset config.Dataset

	cursor  *player.Cursor
	live    int
	gen     int
	running bool
	speed   float64

	bars  bool
	deck  bool
	alert string
	width int

	input textinput.Model
	logs  viewport.Model
	spin  spinner.Model
}

func newScreen(l lesson.Lesson, cfg *config.Config, theme Theme, observers []player.Observer) (*screen, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ti := textinput.New()
	ti.Prompt = "values> "
	ti.Placeholder = "40, 30, 60"
	ti.CharLimit = 200
	ti.Width = 48

	s := &screen{
		lesson:    l,
		cfg:       cfg,
		keys:      newKeyMap(),
		help:      help.New(),
		observers: observers,
		presets:   config.ListPresets(l.ID()),
		preset:    -1,
		live:      -1,
		speed:     player.ClampSpeed(cfg.Speed),
		width:     80,
		input:     ti,
		logs:      viewport.New(76, 6),
		spin:      spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	s.setTheme(theme)

	ds, err := session.Resolve(cfg, l.ID(), "", config.Dataset{})
	if err != nil {
		return nil, err
	}
	if err := s.load(ds); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *screen) setTheme(t Theme) {
	s.theme = t
	s.styles = NewStyles(t)
}

func (s *screen) resize(width int) {
	if width <= 0 {
		return
	}
	s.width = width
	s.logs.Width = max(width-4, 20)
	s.help.Width = width
}

// load rebuilds the frames for ds. On error the current frames stay.
func (s *screen) load(ds config.Dataset) error {
	seq, err := s.lesson.Build(ds)
	if err != nil {
		return err
	}
	frames := step.Collect(seq)
	if len(frames) == 0 {
		return step.ErrEmptySequence
	}
	s.abandon()
	s.dataset = ds
	s.cursor = player.NewCursorFrames(frames)
	s.live = -1
	s.running = false
	s.gen++
	s.syncLogs()
	return nil
}

// reload applies a new config. A running animation keeps its frames.
func (s *screen) reload(cfg *config.Config) error {
	s.cfg = cfg
	s.speed = player.ClampSpeed(cfg.Speed)
	if s.running {
		return nil
	}
	ds, err := session.Resolve(cfg, s.lesson.ID(), s.presetName(), config.Dataset{})
	if err != nil {
		return err
	}
	return s.load(ds)
}

func (s *screen) presetName() string {
	if s.preset < 0 || s.preset >= len(s.presets) {
		return ""
	}
	return s.presets[s.preset]
}

// capturing reports whether keys belong to the screen alone.
func (s *screen) capturing() bool {
	return s.alert != "" || s.input.Focused()
}

func (s *screen) finished() bool {
	return s.live == s.cursor.Len()-1
}

// abandon reports an unfinished run to the observers as cancelled.
func (s *screen) abandon() {
	if s.cursor == nil || s.live < 0 || s.finished() {
		return
	}
	for _, o := range s.observers {
		if ro, ok := o.(player.RunObserver); ok {
			ro.OnRunEnd(s.lesson.ID(), s.live+1, context.Canceled)
		}
	}
	s.live = s.cursor.Len() - 1
}

func (s *screen) Status() string {
	switch {
	case !s.cursor.Started():
		return StatusReady
	case s.running:
		return StatusRunning
	case s.cursor.Position() < s.live:
		return StatusReplay
	case s.cursor.Done():
		return StatusDone
	default:
		return StatusPaused
	}
}

func (s *screen) start() tea.Cmd {
	if s.running {
		return nil
	}
	if s.cursor.Done() {
		s.reset()
	}
	s.running = true
	s.gen++
	if !s.cursor.Started() {
		s.advance()
		if !s.running {
			return nil
		}
	}
	return tea.Batch(s.schedule(), s.spin.Tick)
}

func (s *screen) pause() {
	if s.running {
		s.running = false
		s.gen++
	}
}

func (s *screen) reset() {
	s.abandon()
	s.cursor.Reset()
	s.live = -1
	s.running = false
	s.gen++
	s.syncLogs()
}

// advance shows the next frame. Frames past the furthest one shown so far
// go to the observers.
func (s *screen) advance() {
	f, ok := s.cursor.Next()
	if !ok {
		s.pause()
		return
	}
	if pos := s.cursor.Position(); pos > s.live {
		s.live = pos
		for _, o := range s.observers {
			o.OnFrame(s.lesson.ID(), f)
		}
		if s.cursor.Done() {
			for _, o := range s.observers {
				if ro, ok := o.(player.RunObserver); ok {
					ro.OnRunEnd(s.lesson.ID(), s.live+1, nil)
				}
			}
		}
	}
	if s.cursor.Done() {
		s.pause()
	}
	s.syncLogs()
}

func (s *screen) schedule() tea.Cmd {
	f, _ := s.cursor.Current()
	gen := s.gen
	return tea.Tick(player.Scale(f.Delay, s.speed), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (s *screen) syncLogs() {
	s.logs.SetContent(logLines(s.cursor.History()))
	s.logs.GotoBottom()
}

func (s *screen) applyInput() {
	s.input.Blur()
	values, err := input.ParseIntsLimit(s.input.Value(), s.cfg.MaxValues)
	if err != nil {
		s.alert = err.Error()
		return
	}
	ds := s.dataset
	ds.Values = values
	if err := s.load(ds); err != nil {
		s.alert = err.Error()
	}
}

func (s *screen) nextPreset() {
	s.preset++
	if s.preset >= len(s.presets) {
		s.preset = -1
	}
	ds, err := session.Resolve(s.cfg, s.lesson.ID(), s.presetName(), config.Dataset{})
	if err == nil {
		err = s.load(ds)
	}
	if err != nil {
		s.alert = err.Error()
	}
}

func (s *screen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)
	case tickMsg:
		if msg.gen != s.gen || !s.running {
			return nil
		}
		s.advance()
		if !s.running {
			return nil
		}
		return s.schedule()
	case spinner.TickMsg:
		if !s.running {
			return nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return cmd
	}
	return nil
}

func (s *screen) handleKey(msg tea.KeyMsg) tea.Cmd {
	// The alert blocks every other key until dismissed.
	if s.alert != "" {
		if key.Matches(msg, s.keys.Run, s.keys.Exit) {
			s.alert = ""
		}
		return nil
	}
	if s.input.Focused() {
		switch msg.String() {
		case "enter":
			s.applyInput()
			return nil
		case "esc":
			s.input.Blur()
			return nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, s.keys.Run):
		return s.start()
	case key.Matches(msg, s.keys.Pause):
		if s.running {
			s.pause()
			return nil
		}
		return s.start()
	case key.Matches(msg, s.keys.Reset):
		s.reset()
	case key.Matches(msg, s.keys.Back):
		s.pause()
		s.cursor.Prev()
		s.syncLogs()
	case key.Matches(msg, s.keys.Fwd):
		s.pause()
		s.advance()
	case key.Matches(msg, s.keys.Faster):
		s.speed = player.ClampSpeed(s.speed * 2)
	case key.Matches(msg, s.keys.Slower):
		s.speed = player.ClampSpeed(s.speed / 2)
	case key.Matches(msg, s.keys.Input):
		s.pause()
		s.input.SetValue(input.FormatInts(s.dataset.Values))
		return s.input.Focus()
	case key.Matches(msg, s.keys.Bars):
		s.bars = !s.bars
	case key.Matches(msg, s.keys.Deck):
		s.deck = !s.deck
	case key.Matches(msg, s.keys.Preset):
		s.pause()
		s.nextPreset()
	case key.Matches(msg, s.keys.Help):
		s.help.ShowAll = !s.help.ShowAll
	}
	return nil
}

func (s *screen) statusLine() string {
	st := s.styles
	status := s.Status()
	var badge string
	switch status {
	case StatusRunning:
		badge = st.Running.Render(s.spin.View() + " " + status)
	case StatusDone:
		badge = st.Done.Render(status)
	default:
		badge = st.Paused.Render(status)
	}
	preset := s.presetName()
	if preset == "" {
		preset = "default"
	}
	return fmt.Sprintf("%s  %s %s  %s %s  %s %s",
		badge,
		st.Subtle.Render("frame"), st.Value.Render(fmt.Sprintf("%d/%d", s.cursor.Position()+1, s.cursor.Len())),
		st.Subtle.Render("speed"), st.Value.Render(fmt.Sprintf("%.2fx", s.speed)),
		st.Subtle.Render("preset"), st.Value.Render(preset))
}

func (s *screen) View() string {
	st := s.styles
	var b strings.Builder

	b.WriteString(st.Header.Render(GradientText(strings.ToUpper(s.lesson.Title()), s.theme.Primary, s.theme.Secondary)) + "\n")
	b.WriteString(s.statusLine() + "\n")
	b.WriteString(st.Subtle.Render(ProgressBar(s.cursor.Progress(), max(s.width-4, 10))) + "\n\n")

	f, ok := s.cursor.Current()
	if !ok {
		f = step.Frame{Values: s.dataset.Values, Caption: "Press enter to run. i edits the values, d opens the theory deck."}
	}
	b.WriteString(st.Value.Render(f.Caption) + "\n\n")
	if s.bars {
		b.WriteString(renderBars(f, st) + "\n")
	} else {
		b.WriteString(renderCells(f, st) + "\n")
	}
	b.WriteString("\n" + st.Label.Render("structure") + renderItems(f, st) + "\n\n")

	analog := f.Analog
	if analog == "" {
		analog = s.lesson.Deck().Analog
	}
	side := lipgloss.JoinHorizontal(lipgloss.Top,
		st.Panel.Render(renderCounters(f, st)),
		"  ",
		st.Analog.Width(max(s.width/2, 30)).Render(analog))
	b.WriteString(side + "\n")

	if f.Alert != "" {
		b.WriteString(st.Alert.Render("▲ "+f.Alert) + "\n")
	}
	if chart := renderChart(f, st, s.width/2); chart != "" {
		b.WriteString(chart + "\n")
	}
	b.WriteString(st.Subtle.Render(Separator(max(s.width-4, 10))) + "\n")
	b.WriteString(s.logs.View() + "\n")

	if s.deck {
		b.WriteString(st.Panel.Width(max(min(s.width-4, 96), 30)).Render(s.lesson.Deck().String()) + "\n")
	}
	if s.input.Focused() {
		b.WriteString(s.input.View() + "\n")
	}
	b.WriteString(s.help.View(s.keys))

	if s.alert != "" {
		return renderModal(s.alert, st) + "\n\n" + b.String()
	}
	return b.String()
}
