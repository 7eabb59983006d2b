// =============================================================================
// XLIFF/CSV Converter - Error Taxonomy
// =============================================================================
//
// Every failure that can abort a conversion unwraps to one of the sentinel
// errors below, so callers can branch with errors.Is:
//
//   ErrParse            : the markup document is not well-formed
//   ErrMissingAttribute : a required markup attribute is absent
//   ErrMissingField     : a required table column is absent
//   ErrInvalidMode      : --mode is absent or not a recognized value
//   ErrIO               : the source or destination could not be used
//
// =============================================================================

package types

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

var (
	ErrParse            = errors.New("malformed markup")
	ErrMissingAttribute = errors.New("missing required attribute")
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidMode      = errors.New("invalid mode")
	ErrIO               = errors.New("i/o failure")
)

// =============================================================================
// TYPED ERRORS
// =============================================================================

// ParseError reports a markup document that is not well-formed.
type ParseError struct {
	// Line is the 1-based line where the problem was detected, 0 if unknown.
	Line int

	// Err is the underlying decoder error, if any.
	Err error

	// Msg describes structural problems the decoder itself does not report.
	Msg string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(ErrParse.Error())
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is reports ErrParse as a match so errors.Is works without wrapping twice.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingAttributeError reports a required attribute absent from an element.
type MissingAttributeError struct {
	// Element is the local name of the element.
	Element string

	// Attribute is the name of the absent attribute.
	Attribute string

	// Line is the 1-based line of the element's start tag, 0 if unknown.
	Line int
}

func (e *MissingAttributeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: <%s> on line %d has no %q attribute",
			ErrMissingAttribute, e.Element, e.Line, e.Attribute)
	}
	return fmt.Sprintf("%s: <%s> has no %q attribute", ErrMissingAttribute, e.Element, e.Attribute)
}

func (e *MissingAttributeError) Unwrap() error {
	return ErrMissingAttribute
}

// MissingFieldError reports a recognized field absent from a table header or
// record mapping.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingField, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
