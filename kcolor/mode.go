package kcolor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode accepts auto, always or never (case-insensitive). Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeAlways:
		return ModeAlways, nil
	case ModeNever:
		return ModeNever, nil
	default:
		return "", fmt.Errorf("kcolor: unknown color mode %q", s)
	}
}

// ForWriter picks a Styler for w. In auto mode colors are used only when w
// is a terminal and NO_COLOR is unset.
func ForWriter(mode Mode, w io.Writer) Styler {
	return forWriter(mode, w, os.LookupEnv)
}

func forWriter(mode Mode, w io.Writer, lookup func(string) (string, bool)) Styler {
	switch mode {
	case ModeAlways:
		return ANSI
	case ModeNever:
		return Plain
	}
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		return Plain
	}
	if isTerminal(w) {
		return ANSI
	}
	return Plain
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
