package render

import (
	"fmt"
	"strings"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// ClearLine erases from the cursor to the end of the line.
func ClearLine() string {
	return CSI + "K"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// RGB is a 24-bit terminal colour.
type RGB [3]uint8

var (
	ColorText    = RGB{220, 220, 220}
	ColorDim     = RGB{120, 120, 130}
	ColorTitle   = RGB{190, 160, 40}
	ColorEnemy   = RGB{200, 50, 50}
	ColorLoot    = RGB{50, 160, 160}
	ColorVictory = RGB{85, 255, 85}
	ColorDefeat  = RGB{255, 85, 85}
)

// Paint wraps text in a truecolor foreground SGR, optionally bold, and resets
// afterwards so state never leaks into the next span.
func Paint(sb *strings.Builder, text string, c RGB, bold bool) {
	if bold {
		sb.WriteString(CSI + "0;1;38;2;")
	} else {
		sb.WriteString(CSI + "0;38;2;")
	}
	fmt.Fprintf(sb, "%d;%d;%dm", c[0], c[1], c[2])
	sb.WriteString(text)
	sb.WriteString(Reset)
}

// healthColor follows a green > yellow > red gradient.
func healthColor(hp, maxHP int) RGB {
	ratio := float64(hp) / float64(maxHP)
	switch {
	case ratio > 0.5:
		return RGB{50, 200, 50}
	case ratio > 0.25:
		return RGB{220, 180, 30}
	default:
		return RGB{220, 50, 30}
	}
}
