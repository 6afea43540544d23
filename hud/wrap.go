package hud

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines no wider than width display columns
// Blank lines are kept as paragraph breaks; words wider than width are truncated
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		var line strings.Builder
		lw := 0
		for _, w := range words {
			ww := runewidth.StringWidth(w)
			if ww > width {
				w = runewidth.Truncate(w, width, "")
				ww = runewidth.StringWidth(w)
			}
			switch {
			case lw == 0:
				line.WriteString(w)
				lw = ww
			case lw+1+ww <= width:
				line.WriteByte(' ')
				line.WriteString(w)
				lw += 1 + ww
			default:
				out = append(out, line.String())
				line.Reset()
				line.WriteString(w)
				lw = ww
			}
		}
		out = append(out, line.String())
	}
	return out
}

// Fit pads or truncates s to exactly width columns
func Fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
