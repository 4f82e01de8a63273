package deck

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/tuicards/internal/model"
)

// File is the TOML layout of a deck file.
type File struct {
	Cards []model.Card `toml:"card"`
}

// LoadFile reads and validates a deck file.
func LoadFile(path string) ([]model.Card, error) {
	if path == "" {
		return nil, fmt.Errorf("deck path is empty")
	}
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("deck file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to decode deck: %w", err)
	}
	if err := validateCards(f.Cards); err != nil {
		return nil, err
	}
	return f.Cards, nil
}

// Write encodes cards as a deck file.
func Write(w io.Writer, cards []model.Card) error {
	if err := toml.NewEncoder(w).Encode(File{Cards: cards}); err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}
	return nil
}

func validateCards(cards []model.Card) error {
	if len(cards) == 0 {
		return fmt.Errorf("deck has no cards")
	}
	seen := make(map[int]int, len(cards))
	for i, card := range cards {
		pos := i + 1
		if strings.TrimSpace(card.Chinese) == "" {
			return fmt.Errorf("card %d: chinese must not be empty", pos)
		}
		if strings.TrimSpace(card.English) == "" {
			return fmt.Errorf("card %d: english must not be empty", pos)
		}
		if card.ID < 0 {
			return fmt.Errorf("card %d: id must be positive", pos)
		}
		if card.ID == 0 {
			continue
		}
		if prev, ok := seen[card.ID]; ok {
			return fmt.Errorf("card %d: id %d already used by card %d", pos, card.ID, prev)
		}
		seen[card.ID] = pos
	}
	return nil
}
