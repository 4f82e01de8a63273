package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldChinese = iota
	fieldPinyin
	fieldEnglish
)

type addForm struct {
	inputs   []textinput.Model
	focus    int
	rejected bool
}

func newAddForm() addForm {
	return addForm{
		inputs: []textinput.Model{
			newFormInput("e.g. 你好"),
			newFormInput("e.g. nǐ hǎo"),
			newFormInput("e.g. hello"),
		},
	}
}

func newFormInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = placeholder
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

var formLabels = []string{"Chinese Character(s)", "Pinyin", "English Translation"}

func (f *addForm) setFocus(idx int) tea.Cmd {
	count := len(f.inputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	f.focus = idx
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

func (f *addForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *addForm) values() (chinese, pinyin, english string) {
	return f.inputs[fieldChinese].Value(), f.inputs[fieldPinyin].Value(), f.inputs[fieldEnglish].Value()
}

func (f *addForm) clear() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.rejected = false
}

func (f *addForm) setWidth(width int) {
	for i := range f.inputs {
		promptWidth := lipgloss.Width(f.inputs[i].Prompt)
		f.inputs[i].Width = maxInt(10, width-promptWidth-1)
	}
}

func (f *addForm) view(width int) string {
	lines := []string{titleStyle.Render("Add New Flashcard"), ""}
	for i, input := range f.inputs {
		label := labelStyle.Render(formLabels[i])
		if i == f.focus {
			label = activeLabelStyle.Render(formLabels[i])
		}
		lines = append(lines, label, input.View(), "")
	}
	if f.rejected {
		lines = append(lines, errorStyle.Render("Chinese and English are required."))
	}
	lines = append(lines, mutedStyle.Render("tab/shift+tab: next field  enter: add card  esc: cancel"))
	return modalStyle.Width(width).Render(strings.Join(lines, "\n"))
}
