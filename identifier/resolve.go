package identifier

import (
	"strconv"

	"github.com/rodoufu/serde/token"
)

// Unit is the payload of a CatchAllUnit fallback.
type Unit struct{}

// Outcome tells whether a token named a declared identifier or fell through
// to the catch-all.
type Outcome int

const (
	Matched Outcome = iota + 1
	Fallback
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Fallback:
		return "fallback"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

// Result is a successful resolution. Identifier is set for Matched,
// Payload for a CatchAllPayload Fallback.
type Result[T any] struct {
	Outcome    Outcome
	Identifier Identifier
	Payload    T
}

// Resolver matches tokens against a Set under a fixed policy.
type Resolver[T any] struct {
	set     *Set
	policy  Policy
	convert Converter[T]
}

// NewStrict returns a resolver failing on every unknown token.
func NewStrict(set *Set) *Resolver[Unit] {
	return newResolver[Unit](set, Strict, nil)
}

// NewCatchAllUnit returns a resolver mapping every unknown token to a
// payload-less Fallback.
func NewCatchAllUnit(set *Set) *Resolver[Unit] {
	return newResolver[Unit](set, CatchAllUnit, nil)
}

// NewCatchAll returns a resolver converting every unknown token into a
// Fallback payload with convert.
func NewCatchAll[T any](set *Set, convert Converter[T]) *Resolver[T] {
	if convert == nil {
		panic("identifier: catch-all converter cannot be nil")
	}

	return newResolver(set, CatchAllPayload, convert)
}

func newResolver[T any](set *Set, policy Policy, convert Converter[T]) *Resolver[T] {
	if set == nil {
		panic("identifier: resolver set cannot be nil")
	}

	return &Resolver[T]{set: set, policy: policy, convert: convert}
}

func (r *Resolver[T]) Set() *Set { return r.set }

func (r *Resolver[T]) Policy() Policy { return r.policy }

// Resolve maps tok to a declared identifier or applies the unknown policy.
func (r *Resolver[T]) Resolve(tok token.Token) (Result[T], error) {
	switch tok.Kind() {
	case token.KindIndex:
		v, _ := tok.Index()
		if id, ok := r.set.At(v); ok {
			return Result[T]{Outcome: Matched, Identifier: id}, nil
		}

		return r.unknown(tok, func() error {
			return &InvalidIndexError{Kind: r.set.kind, Value: v, Len: r.set.Len()}
		})

	case token.KindName:
		s, _ := tok.Name()
		if id, ok := r.set.Lookup(s); ok {
			return Result[T]{Outcome: Matched, Identifier: id}, nil
		}

		return r.unknown(tok, func() error {
			return &UnknownNameError{Kind: r.set.kind, Value: s, Allowed: r.set.Names()}
		})

	case token.KindBytes:
		b, _ := tok.RawBytes()
		if id, ok := r.set.LookupBytes(b); ok {
			return Result[T]{Outcome: Matched, Identifier: id}, nil
		}

		return r.unknown(tok, func() error {
			return &UnknownNameError{Kind: r.set.kind, Value: lossy(b), Allowed: r.set.Names()}
		})

	default:
		return Result[T]{}, ErrInvalidToken
	}
}

// unknown applies the policy. strictErr is only built when the policy is strict.
func (r *Resolver[T]) unknown(tok token.Token, strictErr func() error) (Result[T], error) {
	switch r.policy {
	case CatchAllUnit:
		return Result[T]{Outcome: Fallback}, nil

	case CatchAllPayload:
		payload, err := r.convert(tok)
		if err != nil {
			return Result[T]{}, err
		}

		return Result[T]{Outcome: Fallback, Payload: payload}, nil

	default:
		return Result[T]{}, strictErr()
	}
}
