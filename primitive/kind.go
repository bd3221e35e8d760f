package primitive

import "math"

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum tags the shape of a primitive handed over by a format reader.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindString
	KindBytes

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only integer kinds has meaningful bits amount, but requested for: " + k.String())
	case KindUint8:
		return 8
	case KindUint16:
		return 16
	case KindUint32:
		return 32
	case KindUint64:
		return 64
	}
}

// Max returns the largest value representable by an unsigned kind.
func (k KindEnum) Max() uint64 {
	switch k {
	default:
		panic("only integer kinds has a maximum value, but requested for: " + k.String())
	case KindUint8:
		return math.MaxUint8
	case KindUint16:
		return math.MaxUint16
	case KindUint32:
		return math.MaxUint32
	case KindUint64:
		return math.MaxUint64
	}
}

// Expecting describes the kind the way decode errors phrase an expectation,
// e.g. "u8" or "a string".
func (k KindEnum) Expecting() string {
	switch k {
	case KindUint8:
		return "u8"
	case KindUint16:
		return "u16"
	case KindUint32:
		return "u32"
	case KindUint64:
		return "u64"
	case KindString:
		return "a string"
	case KindBytes:
		return "a byte array"
	default:
		return k.String()
	}
}
