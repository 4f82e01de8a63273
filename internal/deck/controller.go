// Package deck owns the flashcard deck and the study session over it.
package deck

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/tuicards/internal/model"
)

// Controller holds the deck and the study session state. Every mutation goes
// through its methods; the filtered view is recomputed after each one.
type Controller struct {
	cards  []model.Card
	nextID int

	filter     model.FilterMode
	view       []int // deck indexes matching filter, in deck order
	cursor     int
	revealed   bool
	showPinyin bool
}

// View is a read-only snapshot of the session for rendering.
type View struct {
	Filter     model.FilterMode
	Cards      []model.Card
	Cursor     int // -1 when Cards is empty
	Current    *model.Card
	Revealed   bool
	ShowPinyin bool
	DeckSize   int
}

// New builds a controller over cards. Ids that are zero get assigned after the
// highest existing id. The slice is copied.
func New(cards []model.Card) *Controller {
	c := &Controller{
		cards:      make([]model.Card, len(cards)),
		showPinyin: true,
	}
	copy(c.cards, cards)
	for _, card := range c.cards {
		if card.ID >= c.nextID {
			c.nextID = card.ID + 1
		}
	}
	if c.nextID == 0 {
		c.nextID = 1
	}
	for i := range c.cards {
		if c.cards[i].ID == 0 {
			c.cards[i].ID = c.mintID()
		}
	}
	c.refresh()
	return c
}

// NewSeeded builds a controller over the built-in seed deck.
func NewSeeded() *Controller {
	return New(SeedCards())
}

// SetFilterMode switches the filter and resets the session.
func (c *Controller) SetFilterMode(mode model.FilterMode) {
	c.filter = mode
	c.refresh()
	c.resetSession()
}

// Next advances the cursor, wrapping to the first card.
func (c *Controller) Next() {
	if len(c.view) == 0 {
		return
	}
	c.cursor = (c.cursor + 1) % len(c.view)
	c.revealed = false
}

// Prev moves the cursor back, wrapping to the last card.
func (c *Controller) Prev() {
	if len(c.view) == 0 {
		return
	}
	if c.cursor == 0 {
		c.cursor = len(c.view) - 1
	} else {
		c.cursor--
	}
	c.revealed = false
}

// ToggleReveal flips between prompt and answer for the current card.
func (c *Controller) ToggleReveal() {
	if len(c.view) == 0 {
		return
	}
	c.revealed = !c.revealed
}

// ToggleKnown flips the known flag of the current card.
func (c *Controller) ToggleKnown() {
	if len(c.view) == 0 {
		return
	}
	id := c.cards[c.view[c.cursor]].ID
	idx := c.indexOf(id)
	if idx < 0 {
		return
	}
	c.cards[idx].Known = !c.cards[idx].Known
	c.mutated()
}

// SetShowPinyin sets the pinyin display preference.
func (c *Controller) SetShowPinyin(show bool) {
	c.showPinyin = show
}

// AddCard appends a new unknown card. It reports false and leaves the deck
// untouched when chinese or english is blank.
func (c *Controller) AddCard(chinese, pinyin, english string) (model.Card, bool) {
	if strings.TrimSpace(chinese) == "" || strings.TrimSpace(english) == "" {
		return model.Card{}, false
	}
	card := model.Card{
		ID:      c.mintID(),
		Chinese: chinese,
		Pinyin:  pinyin,
		English: english,
	}
	c.cards = append(c.cards, card)
	c.mutated()
	return card, true
}

// Cards returns a copy of the whole deck in insertion order.
func (c *Controller) Cards() []model.Card {
	out := make([]model.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Card returns the deck card with the given id.
func (c *Controller) Card(id int) (model.Card, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return model.Card{}, false
	}
	return c.cards[idx], true
}

// Len returns the deck size.
func (c *Controller) Len() int {
	return len(c.cards)
}

// Filter returns the active filter mode.
func (c *Controller) Filter() model.FilterMode {
	return c.filter
}

// ShowPinyin returns the pinyin display preference.
func (c *Controller) ShowPinyin() bool {
	return c.showPinyin
}

// Revealed reports whether the answer side is shown.
func (c *Controller) Revealed() bool {
	return c.revealed
}

// Cursor returns the position in the filtered view, or -1 when it is empty.
func (c *Controller) Cursor() int {
	if len(c.view) == 0 {
		return -1
	}
	return c.cursor
}

// Current returns the card under the cursor.
func (c *Controller) Current() (model.Card, bool) {
	if len(c.view) == 0 {
		return model.Card{}, false
	}
	return c.cards[c.view[c.cursor]], true
}

// Filtered returns the cards visible under the active filter.
func (c *Controller) Filtered() []model.Card {
	out := make([]model.Card, len(c.view))
	for i, idx := range c.view {
		out[i] = c.cards[idx]
	}
	return out
}

// Snapshot returns the current view model.
func (c *Controller) Snapshot() View {
	v := View{
		Filter:     c.filter,
		Cards:      c.Filtered(),
		Cursor:     c.Cursor(),
		Revealed:   c.revealed,
		ShowPinyin: c.showPinyin,
		DeckSize:   len(c.cards),
	}
	if v.Cursor >= 0 {
		current := v.Cards[v.Cursor]
		v.Current = &current
	}
	return v
}

// Counter returns the "Card i of n" label.
func (v View) Counter() string {
	if len(v.Cards) == 0 || v.Cursor < 0 {
		return "No cards to display"
	}
	return fmt.Sprintf("Card %d of %d", v.Cursor+1, len(v.Cards))
}

// EmptyMessage returns the hint shown when the filtered view has no cards.
func (v View) EmptyMessage() string {
	if v.Filter == model.FilterAll {
		return "You have no flashcards yet. Add some cards to get started!"
	}
	return fmt.Sprintf("No %s cards found. Change your filter or add more cards.", v.Filter)
}

func (c *Controller) mintID() int {
	id := c.nextID
	c.nextID++
	return id
}

func (c *Controller) indexOf(id int) int {
	for i, card := range c.cards {
		if card.ID == id {
			return i
		}
	}
	return -1
}

// mutated recomputes the view after a deck change and resets the session when
// the view size changed.
func (c *Controller) mutated() {
	before := len(c.view)
	c.refresh()
	if len(c.view) != before {
		c.resetSession()
	}
}

func (c *Controller) refresh() {
	c.view = c.view[:0]
	for i, card := range c.cards {
		if c.filter.Match(card) {
			c.view = append(c.view, i)
		}
	}
	if c.cursor >= len(c.view) {
		c.cursor = 0
	}
}

func (c *Controller) resetSession() {
	c.cursor = 0
	c.revealed = false
}
