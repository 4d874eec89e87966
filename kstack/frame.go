package kstack

import (
	"strconv"
	"strings"
)

// frameRule names a frame when match holds. located reports whether the
// location is appended in parentheses after the name.
type frameRule struct {
	match   func(fr *StackFrame) bool
	name    func(f *Formatter, fr *StackFrame) string
	located bool
}

// frameRules are tried in order; the first match wins. A frame matching
// none is described by its location alone.
var frameRules = []frameRule{
	{match: isPromiseAll, name: promiseAllName, located: false},
	{match: isMethodCall, name: methodCallName, located: true},
	{match: isConstructor, name: constructorName, located: true},
	{match: hasFunctionName, name: functionName, located: true},
}

// FormatFrame describes a call frame the way it appears after "at " in a
// stack trace.
func (f *Formatter) FormatFrame(frame *StackFrame) string {
	if frame == nil {
		return f.FormatLocation(nil)
	}
	var prefix string
	if frame.IsAsync {
		prefix = "async "
	}
	for _, rule := range frameRules {
		if !rule.match(frame) {
			continue
		}
		name := prefix + rule.name(f, frame)
		if !rule.located {
			return name
		}
		return name + " (" + f.FormatLocation(frame) + ")"
	}
	return prefix + f.FormatLocation(frame)
}

func isPromiseAll(fr *StackFrame) bool {
	return fr.IsPromiseAll
}

func isMethodCall(fr *StackFrame) bool {
	topLevel := fr.IsTopLevel != nil && *fr.IsTopLevel
	return !(topLevel || fr.IsConstructor)
}

func isConstructor(fr *StackFrame) bool {
	return fr.IsConstructor
}

func hasFunctionName(fr *StackFrame) bool {
	return fr.FunctionName != nil
}

func promiseAllName(f *Formatter, fr *StackFrame) string {
	index := 0
	if fr.PromiseIndex != nil {
		index = *fr.PromiseIndex
	}
	return f.style().ItalicBold("Promise.all (index " + strconv.Itoa(index) + ")")
}

func methodCallName(f *Formatter, fr *StackFrame) string {
	var sb strings.Builder
	if fr.FunctionName != nil {
		fn := *fr.FunctionName
		if fr.TypeName != nil && !strings.HasPrefix(fn, *fr.TypeName) {
			sb.WriteString(*fr.TypeName + ".")
		}
		sb.WriteString(fn)
		if fr.MethodName != nil && !strings.HasSuffix(fn, *fr.MethodName) {
			sb.WriteString(" [as " + *fr.MethodName + "]")
		}
	} else {
		if fr.TypeName != nil {
			sb.WriteString(*fr.TypeName + ".")
		}
		if fr.MethodName != nil {
			sb.WriteString(*fr.MethodName)
		} else {
			sb.WriteString("<anonymous>")
		}
	}
	return f.style().ItalicBold(sb.String())
}

func constructorName(f *Formatter, fr *StackFrame) string {
	s := f.style()
	if fr.FunctionName != nil {
		return "new " + s.ItalicBold(*fr.FunctionName)
	}
	return "new " + s.Cyan("<anonymous>")
}

func functionName(f *Formatter, fr *StackFrame) string {
	return f.style().ItalicBold(*fr.FunctionName)
}
