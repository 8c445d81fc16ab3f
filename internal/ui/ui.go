package ui

import (
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/koki-develop/glyphart/internal/ascii"
	"github.com/koki-develop/glyphart/internal/config"
	"github.com/koki-develop/glyphart/internal/decode"
	"github.com/koki-develop/glyphart/internal/glyph"
)

const (
	contrastStep   = 0.1
	brightnessStep = 0.1
	helpHeight     = 2
)

type Option struct {
	Path   string
	Config config.Config
}

func Start(opt *Option) error {
	m := newModel(opt)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if m.err != nil {
		return m.err
	}

	return nil
}

var _ tea.Model = &model{}

type model struct {
	err error

	config config.Config
	path   string
	img    image.Image

	state    modelState
	viewport viewport.Model
}

func newModel(opt *Option) *model {
	return &model{
		config:   opt.Config,
		path:     opt.Path,
		viewport: viewport.New(0, 0),
	}
}

func (m *model) Init() tea.Cmd {
	m.state = modelStateLoading
	return m.load()
}

func (m *model) View() string {
	switch m.state {
	case modelStateLoading:
		return m.loadingView()
	case modelStateReady:
		return m.viewport.View() + "\n" + m.helpView()
	}

	return ""
}

func (m *model) loadingView() string {
	return "loading " + m.path + "..."
}

func (m *model) render() {
	if m.img == nil {
		return
	}
	f := ascii.NewConverter(m.config).Render(m.img)
	m.viewport.SetContent(f.ANSI())
}

func (m *model) helpView() string {
	b := new(strings.Builder)
	label := color.New(color.BgBlue, color.FgWhite)
	b.WriteString(label.Sprintf(" %s ", m.config.Alphabet))
	if m.config.Color {
		b.WriteString(color.New(color.BgGreen, color.FgBlack).Sprint(" color "))
	}
	if m.config.Invert {
		b.WriteString(color.New(color.BgRed, color.FgWhite).Sprint(" invert "))
	}
	b.WriteString(color.New(color.Faint).Sprintf(" contrast %.1f  brightness %.1f\n", m.config.Contrast, m.config.Brightness))
	b.WriteString(" +/- contrast  ]/[ brightness  i invert  c color  a alphabet  q quit")

	return b.String()
}

type modelState string

const (
	modelStateLoading modelState = "loading"
	modelStateReady   modelState = "ready"
)

type errMsg struct{ error }
type loadMsg struct {
	img image.Image
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyRunes:
			quit, handled := m.handleRune(msg.String())
			if quit {
				return m, tea.Quit
			}
			if handled {
				return m, nil
			}
		}

	case errMsg:
		m.err = msg.error
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(0, msg.Height-helpHeight)
		return m, nil

	case loadMsg:
		m.img = msg.img
		m.state = modelStateReady
		m.render()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleRune applies a key binding. Unbound keys are left to the viewport.
func (m *model) handleRune(key string) (quit, handled bool) {
	switch key {
	case "q":
		return true, true
	case "+", "=":
		m.config = m.config.With(config.WithContrast(m.config.Contrast + contrastStep))
	case "-":
		m.config = m.config.With(config.WithContrast(max(0, m.config.Contrast-contrastStep)))
	case "]":
		m.config = m.config.With(config.WithBrightness(m.config.Brightness + brightnessStep))
	case "[":
		m.config = m.config.With(config.WithBrightness(max(0, m.config.Brightness-brightnessStep)))
	case "i":
		m.config = m.config.With(config.WithInvert(!m.config.Invert))
	case "c":
		m.config = m.config.With(config.WithColor(!m.config.Color))
	case "a":
		m.config = m.config.With(config.WithAlphabet(nextAlphabet(m.config.Alphabet)))
	default:
		return false, false
	}
	m.render()
	return false, true
}

func nextAlphabet(k glyph.Kind) glyph.Kind {
	switch k {
	case glyph.Basic:
		return glyph.Detailed
	case glyph.Detailed:
		return glyph.HighDensity
	}
	return glyph.Basic
}

func (m *model) load() tea.Cmd {
	return func() tea.Msg {
		img, err := decode.File(m.path)
		if err != nil {
			return errMsg{&ascii.DecodeError{Source: m.path, Err: err}}
		}
		return loadMsg{img}
	}
}
