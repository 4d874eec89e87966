package kstack

import "github.com/karu-codes/karu-stackfmt/kcolor"

const (
	// DefaultSourceAbbrevThreshold is the longest source line, in characters,
	// that is echoed under the message.
	DefaultSourceAbbrevThreshold = 150
	// DefaultDataURLAbbrevThreshold is the longest file name, in characters,
	// shown without abbreviating its data: payload.
	DefaultDataURLAbbrevThreshold = 150
	// DefaultMaxCauseDepth bounds how many causes are rendered below a report.
	DefaultMaxCauseDepth = 64
)

// Formatter renders reports as text. It holds no mutable state and is safe
// for concurrent use.
type Formatter struct {
	styler                 kcolor.Styler
	sourceAbbrevThreshold  int
	dataURLAbbrevThreshold int
	maxCauseDepth          int
}

type Option func(*Formatter)

// WithStyler sets the color capability used for every styled fragment.
func WithStyler(s kcolor.Styler) Option {
	return func(f *Formatter) {
		if s != nil {
			f.styler = s
		}
	}
}

func WithSourceAbbrevThreshold(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.sourceAbbrevThreshold = n
		}
	}
}

func WithDataURLAbbrevThreshold(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.dataURLAbbrevThreshold = n
		}
	}
}

// WithMaxCauseDepth limits how many causes are rendered. The first cause
// past the limit is replaced by a truncation marker, so zero still prints
// one "Caused by:" line.
func WithMaxCauseDepth(n int) Option {
	return func(f *Formatter) {
		if n >= 0 {
			f.maxCauseDepth = n
		}
	}
}

// New returns a Formatter. Without options it renders plain text.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		styler:                 kcolor.Plain,
		sourceAbbrevThreshold:  DefaultSourceAbbrevThreshold,
		dataURLAbbrevThreshold: DefaultDataURLAbbrevThreshold,
		maxCauseDepth:          DefaultMaxCauseDepth,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Formatter) style() kcolor.Styler {
	if f.styler == nil {
		return kcolor.Plain
	}
	return f.styler
}

var defaultFormatter = New()

func FormatFileName(name string) string {
	return defaultFormatter.FormatFileName(name)
}

func FormatLocation(frame *StackFrame) string {
	return defaultFormatter.FormatLocation(frame)
}

func FormatFrame(frame *StackFrame) string {
	return defaultFormatter.FormatFrame(frame)
}

func FormatSourceLine(sourceLine *string, column *int, isError bool, level int) string {
	return defaultFormatter.FormatSourceLine(sourceLine, column, isError, level)
}

func FormatStack(r *Report, isError bool, level int) string {
	return defaultFormatter.FormatStack(r, isError, level)
}

func Format(r *Report) string {
	return defaultFormatter.Format(r)
}
