package validate

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid document")

// Error is a single violation. Path points to the offending field, e.g.
// "sections[0].body[2].runs[1].char.size".
type Error struct {
	Path    string
	Value   any
	Rule    string
	Message string
}

func (e *Error) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s (value %v)", e.Path, e.Message, e.Value)
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

// Advisory is a discouraged but legal configuration, it never blocks
// rendering.
type Advisory struct {
	Path    string
	Message string
}

func (a Advisory) String() string {
	return a.Path + ": " + a.Message
}
