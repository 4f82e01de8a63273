package deck

import "github.com/verte-zerg/tuicards/internal/model"

// Action is a user intent applied to a Controller by Reduce.
type Action interface {
	apply(c *Controller)
}

// SetFilter selects a filter mode.
type SetFilter struct{ Mode model.FilterMode }

// CycleFilter moves to the next filter mode.
type CycleFilter struct{}

// NextCard advances the cursor.
type NextCard struct{}

// PrevCard moves the cursor back.
type PrevCard struct{}

// Reveal flips the current card.
type Reveal struct{}

// MarkKnown toggles the known flag of the current card.
type MarkKnown struct{}

// SetPinyin sets the pinyin display preference.
type SetPinyin struct{ Show bool }

// TogglePinyin flips the pinyin display preference.
type TogglePinyin struct{}

// Add appends a card. Rejected input leaves the deck unchanged.
type Add struct {
	Chinese string
	Pinyin  string
	English string
}

func (a SetFilter) apply(c *Controller) { c.SetFilterMode(a.Mode) }
func (CycleFilter) apply(c *Controller) { c.SetFilterMode(c.filter.Next()) }
func (NextCard) apply(c *Controller) { c.Next() }
func (PrevCard) apply(c *Controller) { c.Prev() }
func (Reveal) apply(c *Controller) { c.ToggleReveal() }
func (MarkKnown) apply(c *Controller) { c.ToggleKnown() }
func (a SetPinyin) apply(c *Controller) { c.SetShowPinyin(a.Show) }
func (TogglePinyin) apply(c *Controller) { c.SetShowPinyin(!c.showPinyin) }
func (a Add) apply(c *Controller) { c.AddCard(a.Chinese, a.Pinyin, a.English) }

// Reduce applies actions in order and returns the resulting view.
func Reduce(c *Controller, actions ...Action) View {
	for _, a := range actions {
		if a == nil {
			continue
		}
		a.apply(c)
	}
	return c.Snapshot()
}
