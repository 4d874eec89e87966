package kstack

func ptr[T any](v T) *T {
	return &v
}

// at is a top-level frame with a full location.
func at(fn, file string, line, col int) StackFrame {
	fr := StackFrame{
		FileName:     ptr(file),
		LineNumber:   ptr(line),
		ColumnNumber: ptr(col),
		IsTopLevel:   ptr(true),
	}
	if fn != "" {
		fr.FunctionName = ptr(fn)
	}
	return fr
}
