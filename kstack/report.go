package kstack

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/karu-codes/karu-stackfmt/errors"
)

// StackFrame is one call site as resolved by the script engine. Every
// pointer field is optional.
type StackFrame struct {
	TypeName      *string `json:"typeName,omitempty"`
	FunctionName  *string `json:"functionName,omitempty"`
	MethodName    *string `json:"methodName,omitempty"`
	FileName      *string `json:"fileName,omitempty"`
	LineNumber    *int    `json:"lineNumber,omitempty"`
	ColumnNumber  *int    `json:"columnNumber,omitempty"`
	EvalOrigin    *string `json:"evalOrigin,omitempty"`
	IsTopLevel    *bool   `json:"isTopLevel,omitempty"`
	IsEval        bool    `json:"isEval"`
	IsNative      bool    `json:"isNative"`
	IsConstructor bool    `json:"isConstructor"`
	IsAsync       bool    `json:"isAsync"`
	IsPromiseAll  bool    `json:"isPromiseAll"`
	PromiseIndex  *int    `json:"promiseIndex,omitempty"`
}

// Report is an exception thrown by a script, with its call stack and the
// exception that caused it, if any.
type Report struct {
	ExceptionMessage     string       `json:"exceptionMessage"`
	Frames               []StackFrame `json:"frames"`
	SourceLine           *string      `json:"sourceLine,omitempty"`
	SourceLineFrameIndex *int         `json:"sourceLineFrameIndex,omitempty"`
	Cause                *Report      `json:"cause,omitempty"`
}

// Causes returns the cause chain, nearest first, stopping after max entries.
// A non-positive max means no limit.
func (r *Report) Causes(max int) []*Report {
	var out []*Report
	for c := r.Cause; c != nil; c = c.Cause {
		if max > 0 && len(out) == max {
			break
		}
		out = append(out, c)
	}
	return out
}

// UnmarshalJSON rejects a report, at any depth of the cause chain, that
// has no exceptionMessage. An empty message is accepted.
func (r *Report) UnmarshalJSON(data []byte) error {
	type fields Report
	var raw struct {
		fields
		ExceptionMessage *string `json:"exceptionMessage"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ExceptionMessage == nil {
		return errors.New(errors.CodeInvalidArgument, "report has no exceptionMessage")
	}
	*r = Report(raw.fields)
	r.ExceptionMessage = *raw.ExceptionMessage
	return nil
}

// Decode reads a single JSON encoded report from r. Anything but whitespace
// after the report is an error.
func Decode(r io.Reader) (*Report, error) {
	var report Report
	dec := json.NewDecoder(r)
	if err := dec.Decode(&report); err != nil {
		var coded *errors.Error
		if errors.As(err, &coded) {
			return nil, coded
		}
		return nil, errors.Wrap(err, errors.CodeSerialization, "decode report")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.CodeSerialization, "decode report: unexpected data after report")
	}
	return &report, nil
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte) (*Report, error) {
	return Decode(bytes.NewReader(data))
}
