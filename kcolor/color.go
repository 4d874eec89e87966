package kcolor

import (
	"regexp"
)

// Styler decorates text for terminal display. Implementations must return
// the input unchanged apart from added escape sequences.
type Styler interface {
	Cyan(s string) string
	Yellow(s string) string
	Red(s string) string
	ItalicBold(s string) string
}

const (
	sgrReset      = "\033[0m"
	sgrCyan       = "\033[36m"
	sgrYellow     = "\033[33m"
	sgrRed        = "\033[31m"
	sgrItalicBold = "\033[3;1m"
)

var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

type ansi struct{}

// ANSI styles text with SGR escape sequences.
var ANSI Styler = ansi{}

func (ansi) Cyan(s string) string       { return wrap(sgrCyan, s) }
func (ansi) Yellow(s string) string     { return wrap(sgrYellow, s) }
func (ansi) Red(s string) string        { return wrap(sgrRed, s) }
func (ansi) ItalicBold(s string) string { return wrap(sgrItalicBold, s) }

func wrap(code, s string) string {
	return code + s + sgrReset
}

type plain struct{}

// Plain leaves text untouched.
var Plain Styler = plain{}

func (plain) Cyan(s string) string       { return s }
func (plain) Yellow(s string) string     { return s }
func (plain) Red(s string) string        { return s }
func (plain) ItalicBold(s string) string { return s }

// Strip removes SGR escape sequences from s.
func Strip(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}
