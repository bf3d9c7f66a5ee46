package model

import "fmt"

// StructuralError reports element tree or output the emitters cannot handle.
// It indicates programming error and is never recoverable.
type StructuralError struct {
	Where  string
	Detail string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error in %s: %s", e.Where, e.Detail)
}

// UnknownElement builds StructuralError for an element of unexpected type.
func UnknownElement(where string, v any) error {
	return &StructuralError{Where: where, Detail: fmt.Sprintf("unsupported node %T", v)}
}
