package token

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	ErrEmptyInput      = errors.New("empty CBOR input")
	ErrUnsupportedItem = errors.New("CBOR item cannot denote an identifier")
)

const (
	cborUnsigned   = 0
	cborByteString = 2
	cborTextString = 3
)

// decMode accepts malformed UTF-8 in text strings so that such names reach
// the resolver and are reported as unknown rather than failing here.
var decMode cbor.DecMode

func init() {
	var err error

	decMode, err = cbor.DecOptions{
		UTF8: cbor.UTF8DecodeInvalid,
	}.DecMode()
	if err != nil {
		panic("token: CBOR decoder initialization failed: " + err.Error())
	}
}

// FromCBOR classifies a single CBOR data item. Unsigned integers become
// index tokens whose width follows the encoded argument size, text strings
// become names and byte strings become bytes. Anything else, including
// trailing data after the item, is an error.
func FromCBOR(data []byte) (Token, error) {
	if len(data) == 0 {
		return Token{}, ErrEmptyInput
	}

	major := data[0] >> 5
	info := data[0] & 0x1f

	switch major {
	case cborUnsigned:
		var v uint64
		if err := decMode.Unmarshal(data, &v); err != nil {
			return Token{}, fmt.Errorf("decode CBOR unsigned: %w", err)
		}

		switch {
		case info <= 24:
			return U8(uint8(v)), nil
		case info == 25:
			return U16(uint16(v)), nil
		case info == 26:
			return U32(uint32(v)), nil
		default:
			return U64(v), nil
		}

	case cborTextString:
		var s string
		if err := decMode.Unmarshal(data, &s); err != nil {
			return Token{}, fmt.Errorf("decode CBOR text string: %w", err)
		}

		return Str(s), nil

	case cborByteString:
		var b []byte
		if err := decMode.Unmarshal(data, &b); err != nil {
			return Token{}, fmt.Errorf("decode CBOR byte string: %w", err)
		}

		return Bytes(b), nil

	default:
		diag, err := cbor.Diagnose(data)
		if err != nil {
			return Token{}, fmt.Errorf("%w: major type %d", ErrUnsupportedItem, major)
		}

		return Token{}, fmt.Errorf("%w: %s", ErrUnsupportedItem, diag)
	}
}
