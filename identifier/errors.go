package identifier

import (
	"errors"
	"fmt"

	"github.com/rodoufu/serde/token"
)

var (
	// ErrUnknownIdentifier matches both *InvalidIndexError and *UnknownNameError.
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrInvalidToken      = errors.New("invalid token")
)

// InvalidIndexError is returned by a strict resolver for an index >= Len.
type InvalidIndexError struct {
	Kind  Kind
	Value uint64
	Len   int
}

func (e *InvalidIndexError) Error() string {
	return FormatInvalidIndex(e.Kind, e.Value, e.Len)
}

func (e *InvalidIndexError) Is(target error) bool {
	return target == ErrUnknownIdentifier
}

// UnknownNameError is returned by a strict resolver for a name or byte
// string that matches no identifier. Value holds the byte string with
// invalid UTF-8 replaced by U+FFFD.
type UnknownNameError struct {
	Kind    Kind
	Value   string
	Allowed []string
}

func (e *UnknownNameError) Error() string {
	return FormatUnknownName(e.Kind, e.Value, e.Allowed)
}

func (e *UnknownNameError) Is(target error) bool {
	return target == ErrUnknownIdentifier
}

// ConversionError is returned by the built-in converters when a token cannot
// become the catch-all payload type.
type ConversionError struct {
	Token token.Token
	// Expected describes the payload type, e.g. "u8" or "a string".
	Expected string
	// InvalidType is set when the token shape is wrong altogether, as opposed
	// to the right shape holding an unacceptable value.
	InvalidType bool
}

func (e *ConversionError) Error() string {
	reason := "invalid value"
	if e.InvalidType {
		reason = "invalid type"
	}

	return fmt.Sprintf("%s: %s, expected %s", reason, unexpected(e.Token), e.Expected)
}

// unexpected describes a token the way decode errors name an offending input.
func unexpected(t token.Token) string {
	switch t.Kind() {
	case token.KindIndex:
		v, _ := t.Index()
		return fmt.Sprintf("integer `%d`", v)
	case token.KindName:
		s, _ := t.Name()
		return fmt.Sprintf("string %q", s)
	case token.KindBytes:
		return "byte array"
	default:
		return "invalid token"
	}
}
