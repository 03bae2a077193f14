package compiler

import "fmt"

// Error is a single compile-time diagnostic: a source line, optional context
// describing where in that line the problem was found, and a message.
type Error struct {
	Line    int
	Where   string // e.g. "at 'foo'", "at end"; empty if not applicable
	Message string
}

func (e *Error) Error() string {
	if e.Where == "" {
		return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error %s: %s", e.Line, e.Where, e.Message)
}

// ErrorList accumulates every Error reported while compiling a single
// source, mirroring go/scanner.ErrorList's accumulate-then-report idiom but
// with lumen's own "[line N] Error [at <context>]: <message>" wire format.
type ErrorList []*Error

// Add appends a new Error to the list.
func (l *ErrorList) Add(line int, where, message string) {
	*l = append(*l, &Error{Line: line, Where: where, Message: message})
}

// Err returns l as an error if it is non-empty, or nil otherwise.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Error implements the error interface, rendering one diagnostic per line.
func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	s := l[0].Error()
	for _, e := range l[1:] {
		s += "\n" + e.Error()
	}
	return s
}
