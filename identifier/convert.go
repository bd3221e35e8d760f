package identifier

import (
	"bytes"
	"unicode/utf8"

	"github.com/rodoufu/serde/primitive"
	"github.com/rodoufu/serde/token"
	"github.com/rodoufu/serde/utils"
)

// Converter turns the token that matched nothing into the catch-all payload.
type Converter[T any] func(token.Token) (T, error)

// IntoString accepts names, and byte strings holding valid UTF-8.
func IntoString(t token.Token) (string, error) {
	switch t.Kind() {
	case token.KindName:
		s, _ := t.Name()
		return s, nil
	case token.KindBytes:
		b, _ := t.RawBytes()
		if !utf8.Valid(b) {
			return "", &ConversionError{Token: t, Expected: primitive.KindString.Expecting()}
		}

		return string(b), nil
	default:
		return "", &ConversionError{Token: t, Expected: primitive.KindString.Expecting(), InvalidType: true}
	}
}

// IntoUnsigned accepts index tokens whose value fits in U.
func IntoUnsigned[U token.Unsigned]() Converter[U] {
	width := widthOf[U]()

	return func(t token.Token) (U, error) {
		v, ok := t.Index()
		if !ok {
			return 0, &ConversionError{Token: t, Expected: width.Expecting(), InvalidType: true}
		}

		if !utils.IsInRange(0, v, width.Max()) {
			return 0, &ConversionError{Token: t, Expected: width.Expecting()}
		}

		return U(v), nil
	}
}

// IntoAny yields the token as the Go primitive it was read as, so an index
// read as uint8 stays a uint8. Byte strings are copied.
func IntoAny(t token.Token) (any, error) {
	if b, ok := t.RawBytes(); ok {
		return bytes.Clone(b), nil
	}

	if !t.IsValid() {
		return nil, ErrInvalidToken
	}

	return t.Go(), nil
}

// IntoToken yields the token itself, with byte strings copied.
func IntoToken(t token.Token) (token.Token, error) {
	if b, ok := t.RawBytes(); ok {
		return token.Bytes(bytes.Clone(b)), nil
	}

	return t, nil
}

func widthOf[U token.Unsigned]() primitive.KindEnum {
	var zero U

	switch any(zero).(type) {
	case uint8:
		return primitive.KindUint8
	case uint16:
		return primitive.KindUint16
	case uint32:
		return primitive.KindUint32
	default:
		return primitive.KindUint64
	}
}
