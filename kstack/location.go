package kstack

import "strconv"

// FormatLocation renders where a frame is: file:line:col, native, or an
// anonymous (possibly eval) origin.
func (f *Formatter) FormatLocation(frame *StackFrame) string {
	s := f.style()
	if frame == nil {
		return s.Cyan("<anonymous>")
	}
	if frame.IsNative {
		return s.Cyan("native")
	}

	var result string
	switch {
	case frame.FileName != nil:
		result = s.Cyan(f.FormatFileName(*frame.FileName))
	case frame.IsEval && frame.EvalOrigin != nil:
		result = s.Cyan(*frame.EvalOrigin) + ", " + s.Cyan("<anonymous>")
	default:
		result = s.Cyan("<anonymous>")
	}

	if frame.LineNumber != nil {
		result += ":" + s.Yellow(strconv.Itoa(*frame.LineNumber))
		if frame.ColumnNumber != nil {
			result += ":" + s.Yellow(strconv.Itoa(*frame.ColumnNumber))
		}
	}
	return result
}
