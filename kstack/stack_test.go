package kstack

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/karu-codes/karu-stackfmt/kcolor"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	return &Report{
		ExceptionMessage:     "Uncaught Error: boom",
		SourceLine:           ptr("throw new Error('boom');"),
		SourceLineFrameIndex: ptr(0),
		Frames: []StackFrame{
			at("fail", "file:///main.js", 3, 9),
			at("", "file:///main.js", 7, 1),
		},
	}
}

func chain(depth int) *Report {
	var r *Report
	for i := depth; i >= 0; i-- {
		r = &Report{
			ExceptionMessage: "Error: level " + string(rune('a'+i)),
			Frames:           []StackFrame{at("f"+string(rune('a'+i)), "x.js", i+1, i+1)},
			Cause:            r,
		}
	}
	return r
}

func TestFormat(t *testing.T) {
	want := "Uncaught Error: boom\n" +
		"throw new Error('boom');\n" +
		"        ^\n" +
		"    at fail (file:///main.js:3:9)\n" +
		"    at file:///main.js:7:1"
	require.Equal(t, want, Format(sampleReport()))
}

func TestFormatMessageOnly(t *testing.T) {
	require.Equal(t, "Uncaught 42", Format(&Report{ExceptionMessage: "Uncaught 42"}))
	require.Equal(t, "", Format(nil))
}

func TestFormatStaleFrameIndex(t *testing.T) {
	for _, idx := range []int{2, 100, -1} {
		r := sampleReport()
		r.SourceLineFrameIndex = ptr(idx)
		got := Format(r)
		require.NotContains(t, got, "throw new Error")
		require.True(t, strings.HasPrefix(got, "Uncaught Error: boom\n    at fail"))
	}
}

func TestFormatFrameWithoutColumn(t *testing.T) {
	r := sampleReport()
	r.Frames[0].ColumnNumber = nil
	require.NotContains(t, Format(r), "^")
}

func TestFormatCauseChain(t *testing.T) {
	want := "Error: level a\n" +
		"    at fa (x.js:1:1)\n" +
		"Caused by: Error: level b\n" +
		"    at fb (x.js:2:2)\n" +
		"Caused by: Error: level c\n" +
		"    at fc (x.js:3:3)"
	got := Format(chain(2))
	require.Equal(t, want, got)
	require.Equal(t, 2, strings.Count(got, "Caused by: "))
}

func TestFormatStackLevel(t *testing.T) {
	r := &Report{
		ExceptionMessage:     "Error: x",
		SourceLine:           ptr("x()"),
		SourceLineFrameIndex: ptr(0),
		Frames:               []StackFrame{at("x", "m.js", 1, 1)},
		Cause:                &Report{ExceptionMessage: "Error: y"},
	}
	want := "  Error: x\n" +
		"  x()\n" +
		"  ^\n" +
		"      at x (m.js:1:1)\n" +
		"  Caused by:   Error: y"
	require.Equal(t, want, FormatStack(r, true, 2))
}

func TestFormatStackWarningColor(t *testing.T) {
	f := New(WithStyler(kcolor.ANSI))
	r := sampleReport()
	require.Contains(t, f.FormatStack(r, false, 0), "\033[36m        ^\033[0m")
	require.Contains(t, f.Format(r), "\033[31m        ^\033[0m")
	require.Equal(t, Format(r), kcolor.Strip(f.Format(r)))
}

func TestFormatMaxCauseDepth(t *testing.T) {
	f := New(WithMaxCauseDepth(1))
	got := f.Format(chain(3))
	require.Equal(t, "Error: level a\n"+
		"    at fa (x.js:1:1)\n"+
		"Caused by: Error: level b\n"+
		"    at fb (x.js:2:2)\n"+
		"Caused by: [cause chain truncated]", got)

	none := New(WithMaxCauseDepth(0)).Format(chain(1))
	require.Equal(t, "Error: level a\n    at fa (x.js:1:1)\nCaused by: [cause chain truncated]", none)
	require.Equal(t, "Error: level a\n    at fa (x.js:1:1)", New(WithMaxCauseDepth(0)).Format(chain(0)))

	deep := chain(DefaultMaxCauseDepth + 10)
	require.Equal(t, DefaultMaxCauseDepth+1, strings.Count(Format(deep), "Caused by: "))
	require.Contains(t, Format(deep), truncatedCause)
}

func TestCauses(t *testing.T) {
	r := chain(3)
	causes := r.Causes(0)
	require.Len(t, causes, 3)
	require.Equal(t, "Error: level b", causes[0].ExceptionMessage)
	require.Equal(t, "Error: level d", causes[2].ExceptionMessage)
	require.Len(t, r.Causes(2), 2)
	require.Empty(t, (&Report{}).Causes(0))
}

func TestPrettyError(t *testing.T) {
	r := chain(1)
	var err error = NewPrettyError(r)
	require.Equal(t, Format(r), err.Error())

	cause := errors.Unwrap(err)
	require.NotNil(t, cause)
	require.Equal(t, Format(r.Cause), cause.Error())
	require.Nil(t, errors.Unwrap(cause))

	var pretty *PrettyError
	require.True(t, errors.As(err, &pretty))
	require.Same(t, r, pretty.Report)

	styled := New(WithStyler(kcolor.ANSI)).Pretty(r)
	require.Equal(t, err.Error(), kcolor.Strip(styled.Error()))
	require.Equal(t, kcolor.Strip(errors.Unwrap(styled).Error()), cause.Error())
}

func TestFormatConcurrent(t *testing.T) {
	r := sampleReport()
	r.Cause = chain(3)
	want := Format(r)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Format(r)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		require.Equal(t, want, got)
	}
}
