// Package tui provides the Bubble Tea flashcard interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuicards/internal/deck"
	"github.com/verte-zerg/tuicards/internal/model"
)

const appTitle = "汉字卡片 | Chinese Flashcards"

// Model implements the Bubble Tea flashcard UI.
type Model struct {
	deck *deck.Controller
	keys keyMap
	help help.Model

	adding bool
	form   addForm

	width  int
	height int
}

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	activeLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	activeNavStyle   = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	cardStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	pinyinStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	knownStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1F1F1F")).Background(lipgloss.Color("#52C41A")).Padding(0, 1)
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#4A4A4A")).Padding(0, 1)
	modalStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// NewModel constructs a flashcard TUI model over the controller.
func NewModel(ctrl *deck.Controller) *Model {
	return &Model{
		deck: ctrl,
		keys: defaultKeyMap(),
		help: help.New(),
		form: newAddForm(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.form.setWidth(modalInnerWidth(msg.Width))
		return m, nil
	case tea.MouseMsg:
		if m.adding {
			return m, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.dispatch(deck.Reveal{})
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.adding {
			return m.updateForm(msg)
		}
		return m.updateStudy(msg)
	default:
		if m.adding {
			return m, m.form.update(msg)
		}
		return m, nil
	}
}

func (m *Model) updateStudy(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.dispatch(deck.NextCard{})
	case key.Matches(msg, m.keys.Prev):
		m.dispatch(deck.PrevCard{})
	case key.Matches(msg, m.keys.Reveal):
		m.dispatch(deck.Reveal{})
	case key.Matches(msg, m.keys.Known):
		m.dispatch(deck.MarkKnown{})
	case key.Matches(msg, m.keys.Filter):
		m.dispatch(deck.CycleFilter{})
	case key.Matches(msg, m.keys.FilterAll):
		m.dispatch(deck.SetFilter{Mode: model.FilterAll})
	case key.Matches(msg, m.keys.FilterUnknown):
		m.dispatch(deck.SetFilter{Mode: model.FilterUnknown})
	case key.Matches(msg, m.keys.FilterKnown):
		m.dispatch(deck.SetFilter{Mode: model.FilterKnown})
	case key.Matches(msg, m.keys.Pinyin):
		m.dispatch(deck.TogglePinyin{})
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Add):
		return m.openForm()
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.adding = false
		m.form.rejected = false
		return m, nil
	case tea.KeyEnter:
		m.submitForm()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.form.setFocus(m.form.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.form.setFocus(m.form.focus - 1)
	}
	return m, m.form.update(msg)
}

func (m *Model) openForm() (tea.Model, tea.Cmd) {
	m.adding = true
	m.form.rejected = false
	return m, m.form.setFocus(fieldChinese)
}

// submitForm adds the drafted card. A rejected draft leaves the deck size
// unchanged and keeps the form open with its values.
func (m *Model) submitForm() {
	chinese, pinyin, english := m.form.values()
	before := m.deck.Len()
	m.dispatch(deck.Add{Chinese: chinese, Pinyin: pinyin, English: english})
	if m.deck.Len() == before {
		m.form.rejected = true
		return
	}
	m.form.clear()
	m.adding = false
}

func (m *Model) dispatch(action deck.Action) deck.View {
	return deck.Reduce(m.deck, action)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.adding {
		box := m.form.view(modalWidth(m.width))
		if m.width == 0 || m.height == 0 {
			return box
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	v := m.deck.Snapshot()
	header := m.renderHeader(v)
	body := m.renderBody(v)
	footer := m.help.View(m.keys)
	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{header, body, footer}, "\n")
	}
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	bodyHeight := m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header),
		lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer),
	)
}

func (m *Model) renderHeader(v deck.View) string {
	tabs := make([]string, 0, len(model.FilterModes))
	for _, mode := range model.FilterModes {
		if mode == v.Filter {
			tabs = append(tabs, activeNavStyle.Render(mode.Label()))
		} else {
			tabs = append(tabs, inactiveNavStyle.Render(mode.Label()))
		}
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(appTitle), nav)
}

func (m *Model) renderBody(v deck.View) string {
	if v.Current == nil {
		return cardStyle.Width(m.cardWidth()).Render(wrapJoin(v.EmptyMessage(), m.cardInnerWidth(), mutedStyle))
	}
	card := cardStyle.Width(m.cardWidth()).Render(m.renderCardFace(v))
	controls := m.renderControls(v)
	checkbox := "[ ] Show Pinyin"
	if v.ShowPinyin {
		checkbox = "[x] Show Pinyin"
	}
	return lipgloss.JoinVertical(lipgloss.Center, card, "", controls, "", mutedStyle.Render(checkbox))
}

func (m *Model) renderCardFace(v deck.View) string {
	c := v.Current
	inner := m.cardInnerWidth()
	var lines []string
	action := "show"
	if v.Revealed {
		action = "hide"
		lines = append(lines, wrapJoin(c.English, inner, answerStyle), "")
		lines = append(lines, wrapJoin(fmt.Sprintf("%s (%s)", c.Chinese, c.Pinyin), inner, pinyinStyle))
	} else {
		lines = append(lines, wrapJoin(c.Chinese, inner, promptStyle))
		if v.ShowPinyin && c.Pinyin != "" {
			lines = append(lines, "", wrapJoin(c.Pinyin, inner, pinyinStyle))
		}
	}
	lines = append(lines, "", wrapJoin(fmt.Sprintf("Click or press space to %s translation", action), inner, mutedStyle))
	return strings.Join(lines, "\n")
}

func (m *Model) renderControls(v deck.View) string {
	known := unknownStyle.Render("Mark as Known")
	if v.Current.Known {
		known = knownStyle.Render("Known ✓")
	}
	center := lipgloss.JoinVertical(lipgloss.Center, mutedStyle.Render(v.Counter()), known)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render("← Previous"),
		"   ",
		center,
		"   ",
		labelStyle.Render("Next →"),
	)
}

func (m *Model) cardWidth() int {
	if m.width <= 0 {
		return 40
	}
	return maxInt(24, minInt(m.width-4, 48))
}

func (m *Model) cardInnerWidth() int {
	return m.cardWidth() - 4 // horizontal padding
}

func wrapJoin(s string, width int, style lipgloss.Style) string {
	lines := wrapText(s, width)
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func modalWidth(width int) int {
	if width <= 0 {
		return 50
	}
	return maxInt(30, minInt(width-4, 60))
}

func modalInnerWidth(width int) int {
	w := modalWidth(width)
	w -= 4 // horizontal padding
	if w < 10 {
		return 10
	}
	return w
}
