package kstack

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const sourceLineFailure = "Couldn't format source line: "

// FormatSourceLine echoes the failing source line with a caret under
// column (1-based, counted in characters). It returns "" when there is
// nothing sensible to show.
func (f *Formatter) FormatSourceLine(sourceLine *string, column *int, isError bool, level int) string {
	if sourceLine == nil || column == nil {
		return ""
	}
	line := *sourceLine
	length := utf8.RuneCountInString(line)
	if length == 0 || length > f.sourceAbbrevThreshold {
		return ""
	}
	if strings.Contains(line, sourceLineFailure) {
		return "\n" + line
	}

	s := f.style()
	col := *column
	if col > length {
		return "\n" + s.Yellow("Warning") + " " + sourceLineFailure +
			"Column " + strconv.Itoa(col) + " is out of bounds (source may have changed at runtime)"
	}

	var caret strings.Builder
	i := 0
	for _, r := range line {
		if i >= col-1 {
			break
		}
		if r == '\t' {
			caret.WriteByte('\t')
		} else {
			caret.WriteByte(' ')
		}
		i++
	}
	caret.WriteByte('^')

	var underline string
	if isError {
		underline = s.Red(caret.String())
	} else {
		underline = s.Cyan(caret.String())
	}

	indent := strings.Repeat(" ", max(level, 0))
	return "\n" + indent + line + "\n" + indent + underline
}
