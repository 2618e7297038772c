package text

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Wrap word-wraps s at limit columns and returns the resulting lines.
// Explicit newlines in s are preserved as line breaks. A limit of zero or
// less disables wrapping.
func Wrap(s string, limit int) []string {
	if limit <= 0 {
		return strings.Split(s, "\n")
	}
	return strings.Split(wordwrap.String(s, limit), "\n")
}
