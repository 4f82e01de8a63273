package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuicards/internal/deck"
	"github.com/verte-zerg/tuicards/internal/model"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestModel() (*Model, *deck.Controller) {
	ctrl := deck.NewSeeded()
	return NewModel(ctrl), ctrl
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(keyMsg(k))
	}
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNavigationKeys(t *testing.T) {
	m, ctrl := newTestModel()
	press(m, "right", "l", "n")
	if ctrl.Cursor() != 3 {
		t.Fatalf("expected cursor 3, got %d", ctrl.Cursor())
	}
	press(m, "left", "h")
	if ctrl.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", ctrl.Cursor())
	}
	press(m, "p", "p")
	if ctrl.Cursor() != 7 {
		t.Fatalf("expected wrap to 7, got %d", ctrl.Cursor())
	}
}

func TestRevealKeyAndClick(t *testing.T) {
	m, ctrl := newTestModel()
	press(m, " ")
	if !ctrl.Revealed() {
		t.Fatalf("expected space to reveal")
	}
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if ctrl.Revealed() {
		t.Fatalf("expected click to hide")
	}
	m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if ctrl.Revealed() {
		t.Fatalf("release must not toggle")
	}
}

func TestFilterKeys(t *testing.T) {
	m, ctrl := newTestModel()
	press(m, "f")
	if ctrl.Filter() != model.FilterUnknown {
		t.Fatalf("expected unknown filter, got %s", ctrl.Filter())
	}
	press(m, "3")
	if ctrl.Filter() != model.FilterKnown {
		t.Fatalf("expected known filter, got %s", ctrl.Filter())
	}
	press(m, "1")
	if ctrl.Filter() != model.FilterAll {
		t.Fatalf("expected all filter, got %s", ctrl.Filter())
	}
}

func TestMarkKnownUnderUnknownFilter(t *testing.T) {
	m, ctrl := newTestModel()
	press(m, "2", "right", "m")
	if len(ctrl.Filtered()) != 7 {
		t.Fatalf("expected 7 unknown cards, got %d", len(ctrl.Filtered()))
	}
	if ctrl.Cursor() != 0 {
		t.Fatalf("expected cursor reset, got %d", ctrl.Cursor())
	}
}

func TestPinyinToggleHidesPinyin(t *testing.T) {
	m, ctrl := newTestModel()
	if !strings.Contains(m.View(), "nǐ hǎo") {
		t.Fatalf("expected pinyin on prompt side")
	}
	press(m, "y")
	if ctrl.ShowPinyin() {
		t.Fatalf("expected pinyin hidden")
	}
	out := m.View()
	if strings.Contains(out, "nǐ hǎo") {
		t.Fatalf("pinyin should be hidden: %s", out)
	}
	if !strings.Contains(out, "[ ] Show Pinyin") {
		t.Fatalf("expected unchecked pinyin box: %s", out)
	}
}

func TestViewShowsPromptAndAnswer(t *testing.T) {
	m, _ := newTestModel()
	out := m.View()
	for _, want := range []string{"你好", "Card 1 of 8", "Mark as Known", "All Cards"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view: %s", want, out)
		}
	}
	if strings.Contains(out, "hello") {
		t.Fatalf("answer should be hidden before reveal")
	}
	press(m, " ")
	out = m.View()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "你好 (nǐ hǎo)") {
		t.Fatalf("expected answer side: %s", out)
	}
	press(m, "m")
	if !strings.Contains(m.View(), "Known ✓") {
		t.Fatalf("expected known label")
	}
}

func TestViewEmptyFilter(t *testing.T) {
	m, _ := newTestModel()
	press(m, "3")
	out := m.View()
	if !strings.Contains(out, "No known cards found.") {
		t.Fatalf("expected empty message: %s", out)
	}
	press(m, " ", "right", "left", "m")
	if !strings.Contains(m.View(), "No known cards found.") {
		t.Fatalf("expected empty view to stay empty")
	}
}

func TestAddFormSubmit(t *testing.T) {
	m, ctrl := newTestModel()
	press(m, "a")
	if !m.adding {
		t.Fatalf("expected add form to open")
	}
	typeText(m, "茶")
	press(m, "tab")
	typeText(m, "chá")
	press(m, "tab")
	typeText(m, "tea")
	press(m, "enter")
	if m.adding {
		t.Fatalf("expected form to close after add")
	}
	if ctrl.Len() != 9 {
		t.Fatalf("expected 9 cards, got %d", ctrl.Len())
	}
	card := ctrl.Cards()[8]
	if card.Chinese != "茶" || card.Pinyin != "chá" || card.English != "tea" || card.Known {
		t.Fatalf("unexpected card: %+v", card)
	}
	chinese, pinyin, english := m.form.values()
	if chinese != "" || pinyin != "" || english != "" {
		t.Fatalf("expected cleared form, got %q %q %q", chinese, pinyin, english)
	}
}

func TestAddFormRejectsMissingEnglish(t *testing.T) {
	m, ctrl := newTestModel()
	press(m, "a")
	typeText(m, "茶")
	press(m, "enter")
	if !m.adding {
		t.Fatalf("expected form to stay open")
	}
	if ctrl.Len() != 8 {
		t.Fatalf("expected deck unchanged, got %d", ctrl.Len())
	}
	if !strings.Contains(m.View(), "Chinese and English are required.") {
		t.Fatalf("expected validation hint")
	}
	chinese, _, _ := m.form.values()
	if chinese != "茶" {
		t.Fatalf("expected draft kept, got %q", chinese)
	}
}

func TestAddFormEscCancels(t *testing.T) {
	m, ctrl := newTestModel()
	press(m, "a")
	typeText(m, "x")
	press(m, "esc")
	if m.adding {
		t.Fatalf("expected form closed")
	}
	if ctrl.Len() != 8 {
		t.Fatalf("cancel must not add")
	}
	press(m, "right")
	if ctrl.Cursor() != 1 {
		t.Fatalf("study keys should work after cancel")
	}
}

func TestFormKeysDoNotReachDeck(t *testing.T) {
	m, ctrl := newTestModel()
	press(m, "a")
	typeText(m, "m")
	press(m, "right")
	if ctrl.Cursor() != 0 {
		t.Fatalf("navigation must be ignored while adding")
	}
	if c, _ := ctrl.Current(); c.Known {
		t.Fatalf("typing m in the form must not mark known")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel()
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestWindowSizeLayout(t *testing.T) {
	m, _ := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	out := m.View()
	if got := len(strings.Split(out, "\n")); got != 30 {
		t.Fatalf("expected 30 lines, got %d", got)
	}
	if !strings.Contains(out, "Chinese Flashcards") {
		t.Fatalf("expected title in view")
	}
}
