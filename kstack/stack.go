package kstack

import "strings"

const truncatedCause = "[cause chain truncated]"

// Format renders r as an error report at the top level.
func (f *Formatter) Format(r *Report) string {
	return f.FormatStack(r, true, 0)
}

// FormatStack renders the message, the source excerpt, every frame and the
// cause chain of r, indented by level spaces. isError selects the caret
// color: red for errors, cyan for warnings.
func (f *Formatter) FormatStack(r *Report, isError bool, level int) string {
	return f.formatStack(r, isError, max(level, 0), 0)
}

func (f *Formatter) formatStack(r *Report, isError bool, level, depth int) string {
	if r == nil {
		return ""
	}
	indent := strings.Repeat(" ", level)

	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString(r.ExceptionMessage)
	sb.WriteString(f.FormatSourceLine(r.SourceLine, r.highlightColumn(), isError, level))
	for i := range r.Frames {
		sb.WriteString("\n" + indent + "    at ")
		sb.WriteString(f.FormatFrame(&r.Frames[i]))
	}
	if r.Cause != nil {
		sb.WriteString("\n" + indent + "Caused by: ")
		if depth >= f.maxCauseDepth {
			sb.WriteString(truncatedCause)
		} else {
			sb.WriteString(f.formatStack(r.Cause, isError, level, depth+1))
		}
	}
	return sb.String()
}

// highlightColumn is the column of the frame the source line belongs to.
// The index comes from the engine and may be stale, so it is range checked.
func (r *Report) highlightColumn() *int {
	if r.SourceLineFrameIndex == nil {
		return nil
	}
	i := *r.SourceLineFrameIndex
	if i < 0 || i >= len(r.Frames) {
		return nil
	}
	return r.Frames[i].ColumnNumber
}

// PrettyError presents a Report as a Go error whose message is the full
// formatted report.
type PrettyError struct {
	Report    *Report
	formatter *Formatter
}

// Pretty wraps r so it can travel as an error.
func (f *Formatter) Pretty(r *Report) *PrettyError {
	return &PrettyError{Report: r, formatter: f}
}

// NewPrettyError wraps r using the plain default formatter.
func NewPrettyError(r *Report) *PrettyError {
	return defaultFormatter.Pretty(r)
}

func (e *PrettyError) Error() string {
	f := e.formatter
	if f == nil {
		f = defaultFormatter
	}
	return f.Format(e.Report)
}

// Unwrap exposes the cause report, if any, as another PrettyError.
func (e *PrettyError) Unwrap() error {
	if e.Report == nil || e.Report.Cause == nil {
		return nil
	}
	return &PrettyError{Report: e.Report.Cause, formatter: e.formatter}
}
