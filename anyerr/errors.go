package anyerr

import (
	"fmt"
	"strings"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeCast  ErrorType = "CastError"
	TypeParse ErrorType = "ParseError"
)

// AnyError is the interface for all anyval-related errors.
type AnyError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for anyval errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// CastError reports an unchecked cast against a Value holding a different
// type. It is the payload of the MustCast panic, not a returned error.
type CastError struct {
	BaseError
	Requested string
	Held      string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("[%s] value holds %s, not %s", e.ErrType, e.Held, e.Requested)
}

// ParseError reports a malformed scalar literal, with the byte offset of the
// offending position in the input.
type ParseError struct {
	BaseError
	Input  string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%s] %q at offset %d: %s", e.ErrType, e.Input, e.Offset, e.Msg)
}

// MultiError collects multiple anyval errors.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		if ae, ok := m.Errors[0].(AnyError); ok {
			return ae.Type()
		}
	}
	return "MultiError"
}

// NewCastError creates a new CastError naming the requested and held types.
func NewCastError(requested, held string) *CastError {
	return &CastError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("value holds %s, not %s", held, requested),
			ErrType: TypeCast,
		},
		Requested: requested,
		Held:      held,
	}
}

// NewParseError creates a new ParseError at a byte offset in the input.
func NewParseError(input string, offset int, msg string) *ParseError {
	return &ParseError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeParse,
		},
		Input:  input,
		Offset: offset,
	}
}
