package pdb

import "fmt"

// TruncatedInput is returned when a read would run past the end of the
// buffer being decoded.
type TruncatedInput struct {
	Offset, Length int
}

func (e *TruncatedInput) Error() string {
	return fmt.Sprintf("pdb: truncated input: read of %d byte(s) at offset %d exceeds buffer", e.Length, e.Offset)
}

// BadZeroField is returned when a reserved envelope word that must be zero
// is not.
type BadZeroField struct {
	Field string
	Got   uint32
}

func (e *BadZeroField) Error() string {
	return fmt.Sprintf("pdb: reserved field %q is not zero: got %d", e.Field, e.Got)
}

// PageSelfCheckFailed is returned when a page's redundant index or type
// field disagrees with what the walker expects of it. Reason is a short
// human-readable description of which check failed ("index" or "type").
type PageSelfCheckFailed struct {
	Page   int
	Reason string
}

func (e *PageSelfCheckFailed) Error() string {
	return fmt.Sprintf("pdb: page %d self-check failed: %s", e.Page, e.Reason)
}

func newIndexMismatch(page, want, got int) *PageSelfCheckFailed {
	return &PageSelfCheckFailed{Page: page, Reason: fmt.Sprintf("redundant index mismatch: want %d, got %d", want, got)}
}

func newTypeMismatch(page int, want, got TableType) *PageSelfCheckFailed {
	return &PageSelfCheckFailed{Page: page, Reason: fmt.Sprintf("page type mismatch: want %s, got %s", want, got)}
}
