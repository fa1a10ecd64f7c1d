package kanbun

import (
	"errors"
	"fmt"
)

// ErrStructure flags structurally malformed annotated text: input which does
// not match the annotation grammar, or reading-order marks which do not
// nest properly. Errors of type *StructuralParseError match ErrStructure
// with errors.Is.
var ErrStructure = errors.New("kanbun: structural error")

// StructuralParseError reports a position within a source text where the
// text is not well-formed.
type StructuralParseError struct {
	Offset    int    // byte offset into the source text, -1 if unknown
	Remainder string // unparsed rest of the input or the offending unit
	Reason    string
}

// NewStructuralParseError creates an error for position offset in text.
// An offset outside of text results in an empty remainder.
func NewStructuralParseError(text string, offset int, reason string) *StructuralParseError {
	err := &StructuralParseError{Offset: offset, Reason: reason}
	if offset >= 0 && offset <= len(text) {
		err.Remainder = text[offset:]
	}
	return err
}

func (e *StructuralParseError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("kanbun: %s", e.Reason)
	}
	if e.Remainder == "" {
		return fmt.Sprintf("kanbun: %s at offset %d", e.Reason, e.Offset)
	}
	return fmt.Sprintf("kanbun: %s at offset %d: %q", e.Reason, e.Offset, shorten(e.Remainder))
}

// Is lets StructuralParseError match ErrStructure.
func (e *StructuralParseError) Is(target error) bool {
	return target == ErrStructure
}

func shorten(s string) string {
	const maxRunes = 12
	rs := []rune(s)
	if len(rs) <= maxRunes {
		return s
	}
	return string(rs[:maxRunes]) + "…"
}
