package listing

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/tuicards/internal/model"
)

// Render writes cards matching filter as an aligned table. Lines wider than
// width are truncated; width <= 0 disables truncation.
func Render(w io.Writer, cards []model.Card, filter model.FilterMode, width int) error {
	rows := make([][]string, 0, len(cards))
	for _, card := range cards {
		if !filter.Match(card) {
			continue
		}
		known := "no"
		if card.Known {
			known = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(card.ID),
			card.Chinese,
			card.Pinyin,
			card.English,
			known,
		})
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "No %s cards.\n", filter)
		return err
	}
	headers := []string{"ID", "Chinese", "Pinyin", "English", "Known"}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true}) {
		if _, err := fmt.Fprintln(w, truncateLine(line, width)); err != nil {
			return err
		}
	}
	return nil
}
