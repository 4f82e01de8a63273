package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type measuredRune struct {
	r       rune
	width   int
	isSpace bool
}

// wrapText breaks s into lines at most width columns wide, preferring to
// break at spaces. Wide runes count as two columns.
func wrapText(s string, width int) []string {
	s = strings.TrimSpace(s)
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	runes := measure(s)
	var lines []string
	line := make([]measuredRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if len(line) == 0 && item.isSpace {
			i++
			continue
		}
		if lineWidth+item.width > width && len(line) > 0 {
			switch {
			case item.isSpace:
				lines = append(lines, joinRunes(line))
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
				i++
			case lastSpaceIdx >= 0:
				lines = append(lines, joinRunes(line[:lastSpaceIdx]))
				line = append([]measuredRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			default:
				lines = append(lines, joinRunes(line))
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	if len(line) > 0 {
		lines = append(lines, joinRunes(line))
	}
	return lines
}

func measure(s string) []measuredRune {
	out := make([]measuredRune, 0, len(s))
	for _, r := range s {
		out = append(out, measuredRune{
			r:       r,
			width:   runewidth.RuneWidth(r),
			isSpace: r == ' ',
		})
	}
	return out
}

func joinRunes(line []measuredRune) string {
	var b strings.Builder
	for _, item := range line {
		b.WriteRune(item.r)
	}
	return strings.TrimRight(b.String(), " ")
}

func lineWidthOf(line []measuredRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []measuredRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
