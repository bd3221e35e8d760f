package identifier

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrUnknownPolicy = errors.New("unknown policy")

// Policy decides what a resolver does with a token matching no identifier.
type Policy int

const (
	Strict Policy = iota + 1
	CatchAllUnit
	CatchAllPayload
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case CatchAllUnit:
		return "catch_all_unit"
	case CatchAllPayload:
		return "catch_all_payload"
	default:
		return "Policy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePolicy accepts the spellings returned by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	for _, p := range []Policy{Strict, CatchAllUnit, CatchAllPayload} {
		if p.String() == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownPolicy, s)
}
