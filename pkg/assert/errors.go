package assert

import (
	"fmt"
	"runtime"
)

// Location identifies the source line where a check was evaluated.
type Location struct {
	File string
	Line int
}

// String returns the location as file:line
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// IsZero reports whether the location is unknown.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0
}

// AssertionError is raised when a check does not hold.
type AssertionError struct {
	Location Location
	Message  string
}

func (e *AssertionError) Error() string {
	return e.Message
}

// NotImplementedError marks a test body as an unfinished stub.
type NotImplementedError struct {
	Location Location
}

func (e *NotImplementedError) Error() string {
	return "not implemented"
}

// Here returns the location of the function calling Here.
func Here() Location {
	return caller(0)
}

// caller returns the call site of the function invoking caller, moving skip
// further frames up the stack.
func caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}

// raise panics with an AssertionError located at the caller of the exported
// check (two frames above raise).
func raise(format string, args ...any) {
	panic(&AssertionError{
		Location: caller(1),
		Message:  fmt.Sprintf(format, args...),
	})
}

// Fail raises an AssertionError with the given message at the caller.
func Fail(message string) {
	panic(&AssertionError{Location: caller(0), Message: message})
}

// NotImplemented marks the calling test as a stub. The runner reports it as
// skipped.
func NotImplemented() {
	panic(&NotImplementedError{Location: caller(0)})
}
