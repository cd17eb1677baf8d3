package fromhtml

import (
	"regexp"
)

var (
	// Newline runs ending a line (with any trailing whitespace) and
	// newlines at the start of the text are formatting, not content.
	formattingNewlines = regexp.MustCompile(`(?m)(\n+[[:space:]]*$)|(^\n+)`)
	whitespaceLine     = regexp.MustCompile(`(?m)^[[:space:]]+$`)
)

// squeezeText drops indentation and line breaks that only format the
// markup. Lines made only of whitespace collapse to one space.
func squeezeText(text string) string {
	text = formattingNewlines.ReplaceAllString(text, "")
	return whitespaceLine.ReplaceAllString(text, " ")
}
