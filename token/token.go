// Package token classifies the primitives a format reader produces at an
// identifier position into a closed set of shapes: an unsigned index, a
// textual name, or a raw byte string.
package token

import (
	"fmt"
	"strconv"

	"github.com/rodoufu/serde/primitive"
)

// Kind is the shape of a Token.
type Kind int

const (
	KindIndex Kind = iota + 1
	KindName
	KindBytes
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindName:
		return "name"
	case KindBytes:
		return "bytes"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one identifier primitive. The zero value is not a valid token;
// build tokens with the constructors below.
type Token struct {
	kind  Kind
	width primitive.KindEnum
	index uint64
	text  string
	raw   []byte
}

// Unsigned is the set of integer widths a format reader may emit for an index.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

func U8(v uint8) Token   { return Token{kind: KindIndex, width: primitive.KindUint8, index: uint64(v)} }
func U16(v uint16) Token { return Token{kind: KindIndex, width: primitive.KindUint16, index: uint64(v)} }
func U32(v uint32) Token { return Token{kind: KindIndex, width: primitive.KindUint32, index: uint64(v)} }
func U64(v uint64) Token { return Token{kind: KindIndex, width: primitive.KindUint64, index: v} }

// Of widens an unsigned value of any supported width into an index token,
// remembering the width it came from.
func Of[U Unsigned](v U) Token {
	switch v := any(v).(type) {
	case uint8:
		return U8(v)
	case uint16:
		return U16(v)
	case uint32:
		return U32(v)
	default:
		return U64(v.(uint64))
	}
}

// Str builds a name token.
func Str(s string) Token {
	return Token{kind: KindName, width: primitive.KindString, text: s}
}

// Bytes builds a byte-string token. The slice is not copied; tokens are not
// retained past a single resolve call.
func Bytes(b []byte) Token {
	return Token{kind: KindBytes, width: primitive.KindBytes, raw: b}
}

func (t Token) Kind() Kind { return t.kind }

// Width is the primitive the token was built from.
func (t Token) Width() primitive.KindEnum { return t.width }

// IsValid reports whether t was produced by one of the constructors.
func (t Token) IsValid() bool { return t.kind != 0 }

func (t Token) Index() (uint64, bool) {
	return t.index, t.kind == KindIndex
}

func (t Token) Name() (string, bool) {
	return t.text, t.kind == KindName
}

func (t Token) RawBytes() ([]byte, bool) {
	return t.raw, t.kind == KindBytes
}

// Go returns the token as the Go primitive it was built from: uint8, uint16,
// uint32 or uint64 for indices, string for names, []byte for byte strings.
func (t Token) Go() any {
	switch t.width {
	case primitive.KindUint8:
		return uint8(t.index)
	case primitive.KindUint16:
		return uint16(t.index)
	case primitive.KindUint32:
		return uint32(t.index)
	case primitive.KindUint64:
		return t.index
	case primitive.KindString:
		return t.text
	case primitive.KindBytes:
		return t.raw
	default:
		return nil
	}
}

// String renders the token for logs and debugging.
func (t Token) String() string {
	switch t.kind {
	case KindIndex:
		return fmt.Sprintf("%s(%d)", t.width.Expecting(), t.index)
	case KindName:
		return fmt.Sprintf("name(%q)", t.text)
	case KindBytes:
		return fmt.Sprintf("bytes(%q)", t.raw)
	default:
		return "invalid"
	}
}
