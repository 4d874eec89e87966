package errors

// Code represents an error code
type Code string

const (
	CodeInternal        Code = "INTERNAL_ERROR"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeFileSystem      Code = "FILESYSTEM_ERROR"
	CodeSerialization   Code = "SERIALIZATION_ERROR"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status for the code. Usage problems
// exit with 2, everything else with 1.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidArgument:
		return 2
	default:
		return 1
	}
}

// IsUsageError returns true when the error was caused by how the tool was invoked
func (c Code) IsUsageError() bool {
	return c.ExitCode() == 2
}
