package termio

import "fmt"

// TERM_BLACK is the colour index for black.
const TERM_BLACK = uint(0)

// TERM_RED is the colour index for red.
const TERM_RED = uint(1)

// TERM_GREEN is the colour index for green.
const TERM_GREEN = uint(2)

// TERM_YELLOW is the colour index for yellow.
const TERM_YELLOW = uint(3)

// TERM_BLUE is the colour index for blue.
const TERM_BLUE = uint(4)

// TERM_MAGENTA is the colour index for magenta.
const TERM_MAGENTA = uint(5)

// TERM_CYAN is the colour index for cyan.
const TERM_CYAN = uint(6)

// TERM_WHITE is the colour index for white.
const TERM_WHITE = uint(7)

// AnsiEscape is a builder for ANSI escape sequences, as used for colouring
// cells of a printed truth table.
type AnsiEscape struct {
	escape string
	count  uint
}

// NewAnsiEscape constructs an empty escape.
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033", 0}
}

// ResetAnsiEscape constructs an escape which restores all terminal attributes
// to their defaults.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[0", 1}
}

// FgColour sets the foreground colour.
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	col += 30
	// Construct string
	var escape string
	if p.count > 0 {
		escape = fmt.Sprintf("%s;%d", p.escape, col)
	} else {
		escape = fmt.Sprintf("%s[%d", p.escape, col)
	}
	// Done
	return AnsiEscape{escape, p.count + 1}
}

// Build constructs the final escape string.
func (p AnsiEscape) Build() string {
	return fmt.Sprintf("%sm", p.escape)
}
