package errors

import (
	"fmt"
	"strings"
)

// ToCMDError formats an error for CLI output
// Format: [CODE] Message
func ToCMDError(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if As(err, &customErr) {
		if customErr.Cause != nil {
			return fmt.Sprintf("[%s] %s: %v", customErr.Code, customErr.Message, Cause(customErr.Cause))
		}
		return fmt.Sprintf("[%s] %s", customErr.Code, customErr.Message)
	}

	return fmt.Sprintf("[%s] %s", CodeInternal, err.Error())
}

// ToCMDErrorWithDetails appends "key: value" detail lines below the
// message, in the order given by keys.
func ToCMDErrorWithDetails(err error, keys ...string) string {
	msg := ToCMDError(err)
	if msg == "" {
		return ""
	}

	var customErr *Error
	if !As(err, &customErr) || len(customErr.Details) == 0 {
		return msg
	}

	var sb strings.Builder
	sb.WriteString(msg)
	for _, k := range keys {
		if v, ok := customErr.Details[k]; ok {
			sb.WriteString(fmt.Sprintf("\n  %s: %v", k, v))
		}
	}
	return sb.String()
}

// ExitCode returns the process exit status for err, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return GetCode(err).ExitCode()
}
