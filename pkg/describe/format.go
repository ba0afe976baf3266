package describe

import (
	"math"
	"strconv"
	"strings"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
)

// indentWidth is the number of spaces added per nesting level.
const indentWidth = 2

// FormatNumber formats v rounded to two decimal places, dropping the decimal
// point and trailing zeros when the fraction is zero: 12.0 → "12",
// 12.5 → "12.5". Locale-independent by construction.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// FormatPercent converts a 0–1 opacity fraction to a whole percentage,
// rounded to the nearest integer: 0.5 → "50%".
func FormatPercent(opacity float64) string {
	return strconv.Itoa(int(math.Round(opacity*100))) + "%"
}

// FormatRGBA formats a normalized RGB triple and an opacity as a CSS rgba()
// string. Channels are scaled to 0–255 and rounded; the alpha component is
// the raw fraction, not rounded and not a percentage.
func FormatRGBA(c figma.RGB, opacity float64) string {
	var b strings.Builder
	b.WriteString("rgba(")
	b.WriteString(strconv.Itoa(channel(c.R)))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(channel(c.G)))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(channel(c.B)))
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(opacity, 'f', -1, 64))
	b.WriteString(")")
	return b.String()
}

// channel scales a 0–1 color channel to 0–255.
func channel(v float64) int {
	return int(math.Round(v * 255))
}

// Indent prefixes every non-blank line of block with width spaces.
// Blank lines are left untouched so nested blocks keep their spacing.
// Indentation accumulates across nested calls, which is how recursion
// produces progressively deeper child blocks.
func Indent(block string, width int) string {
	if block == "" || width <= 0 {
		return block
	}
	prefix := strings.Repeat(" ", width)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// escapeText replaces literal newlines in text content with the two-character
// sequence \n so every node stays on a single output line.
func escapeText(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
