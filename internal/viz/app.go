package viz

import (
	"context"
	"fmt"
	"strings"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/lesson"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/logging"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/player"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Config    *config.Config
	Registry  *lesson.Registry
	Observers []player.Observer
	Logger    logging.Logger
	// Lesson opens a lesson directly instead of the menu.
	Lesson string
	// WatchPath reloads the config when this file changes.
	WatchPath string
}

// ConfigMsg carries a reloaded config, or the error reloading it.
type ConfigMsg struct {
	Config *config.Config
	Err    error
}

// App is the router: a lesson menu, and at most one mounted lesson screen.
type App struct {
	cfg       *config.Config
	lessons   []lesson.Lesson
	observers []player.Observer
	log       logging.Logger

	cursor int
	screen *screen
	theme  Theme
	styles Styles
	keys   keyMap
	help   help.Model
	notice string
	width  int
}

func NewApp(opts Options) App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	reg := opts.Registry
	if reg == nil {
		reg = lesson.NewRegistry()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Noop()
	}
	a := App{
		cfg:       cfg,
		lessons:   reg.List(),
		observers: opts.Observers,
		log:       log,
		keys:      newKeyMap(),
		help:      help.New(),
		width:     80,
	}
	a.setTheme(GetTheme(cfg.Theme))
	if opts.Lesson != "" {
		if l, err := reg.Get(opts.Lesson); err != nil {
			a.notice = err.Error()
		} else {
			for i, ls := range a.lessons {
				if ls.ID() == l.ID() {
					a.cursor = i
				}
			}
			a.open(l)
		}
	}
	return a
}

func (a App) Init() tea.Cmd { return nil }

func (a *App) setTheme(t Theme) {
	a.theme = t
	a.styles = NewStyles(t)
	if a.screen != nil {
		a.screen.setTheme(t)
	}
}

func (a *App) open(l lesson.Lesson) {
	s, err := newScreen(l, a.cfg, a.theme, a.observers)
	if err != nil {
		a.notice = err.Error()
		a.log.Warn(context.Background(), "unable to open lesson", logging.String("lesson", l.ID()), logging.Err(err))
		return
	}
	s.resize(a.width)
	a.screen = s
	a.notice = ""
	a.log.Info(context.Background(), "lesson opened", logging.String("lesson", l.ID()))
}

// close unmounts the lesson screen and drops its state.
func (a *App) close() {
	if a.screen == nil {
		return
	}
	a.screen.abandon()
	a.log.Debug(context.Background(), "lesson closed", logging.String("lesson", a.screen.lesson.ID()))
	a.screen = nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		if a.screen != nil {
			a.screen.resize(msg.Width)
		}
		return a, nil
	case ConfigMsg:
		a.reload(msg)
		return a, nil
	case tea.KeyMsg:
		if a.screen == nil {
			return a.menuKey(msg)
		}
		if !a.screen.capturing() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				a.close()
				return a, tea.Quit
			case key.Matches(msg, a.keys.Exit):
				a.close()
				return a, nil
			case key.Matches(msg, a.keys.Theme):
				a.setTheme(NextTheme(a.theme))
				return a, nil
			}
		}
	}
	if a.screen != nil {
		return a, a.screen.Update(msg)
	}
	return a, nil
}

func (a *App) reload(msg ConfigMsg) {
	if msg.Err != nil {
		a.notice = "config not reloaded: " + msg.Err.Error()
		a.log.Warn(context.Background(), "config reload failed", logging.Err(msg.Err))
		return
	}
	a.cfg = msg.Config
	a.notice = "config reloaded"
	a.log.Info(context.Background(), "config reloaded", logging.String("theme", a.cfg.Theme))
	a.setTheme(GetTheme(a.cfg.Theme))
	if a.screen != nil {
		if err := a.screen.reload(a.cfg); err != nil {
			a.screen.alert = err.Error()
		}
	}
}

func (a App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.lessons)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Run):
		if len(a.lessons) > 0 {
			a.open(a.lessons[a.cursor])
		}
	case key.Matches(msg, a.keys.Theme):
		a.setTheme(NextTheme(a.theme))
	}
	return a, nil
}

func (a App) View() string {
	if a.screen != nil {
		return a.screen.View()
	}
	st := a.styles
	var b strings.Builder
	b.WriteString(st.Header.Render(GradientText("DSA LEARNING HUB", a.theme.Primary, a.theme.Secondary)) + "\n")
	b.WriteString(st.Subtle.Render("data structures and algorithms, told as a data pipeline") + "\n\n")

	var list strings.Builder
	for i, l := range a.lessons {
		line := fmt.Sprintf("%d. %-18s %s", i+1, l.Title(), st.Subtle.Render(l.ID()))
		if i == a.cursor {
			list.WriteString(st.Selected.Render("> "+line) + "\n")
		} else {
			list.WriteString("  " + line + "\n")
		}
	}

	var preview string
	if len(a.lessons) > 0 {
		d := a.lessons[a.cursor].Deck()
		preview = st.Panel.Width(max(min(a.width-40, 60), 30)).Render(
			st.Title.Render(a.lessons[a.cursor].Title()) + "\n\n" +
				d.Summary + "\n\n" +
				st.Subtle.Render("Complexity: "+d.Complexity))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", preview) + "\n\n")
	b.WriteString(st.Subtle.Render("theme: "+a.theme.Name) + "\n")
	if a.notice != "" {
		b.WriteString(st.Alert.Render(a.notice) + "\n")
	}
	b.WriteString(a.help.View(menuKeys{a.keys}))
	return b.String()
}

// Run starts the TUI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen(), tea.WithContext(gctx))
	if opts.WatchPath != "" {
		g.Go(func() error {
			return config.Watch(gctx, opts.WatchPath, func(cfg *config.Config, err error) {
				p.Send(ConfigMsg{Config: cfg, Err: err})
			})
		})
	}
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return errors.Wrap(err, "unable to run tui")
		}
		return nil
	})
	return g.Wait()
}
