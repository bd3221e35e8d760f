package identifier

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rodoufu/serde/rename"
)

var (
	ErrDuplicateName = errors.New("duplicate identifier name")
	ErrInvalidKind   = errors.New("invalid identifier kind")
	ErrEmptyName     = errors.New("empty identifier name")
)

// Kind tells whether a set names the fields of a record or the variants of
// a sum type. It only affects the wording of error messages.
type Kind int

const (
	Field Kind = iota + 1
	Variant
)

func (k Kind) String() string {
	switch k {
	case Field:
		return "field"
	case Variant:
		return "variant"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind accepts "field" and "variant".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "field":
		return Field, nil
	case "variant":
		return Variant, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrInvalidKind, s)
	}
}

// Identifier is a declared name after renaming, with its declaration position.
type Identifier struct {
	Name  string
	Index int
}

// Set is an immutable, ordered table of identifiers.
type Set struct {
	kind   Kind
	rule   rename.Rule
	style  rename.Style
	ids    []Identifier
	names  []string
	byName map[string]int
}

type setConfig struct {
	rule  rename.Rule
	style rename.Style
}

// Option configures New.
type Option func(*setConfig)

// WithRename applies rule to every declared name once, at construction.
func WithRename(rule rename.Rule) Option {
	return func(c *setConfig) {
		c.rule = rule
	}
}

// WithStyle tells the rename rule which convention the declared names
// follow. Field sets default to rename.FieldStyle and variant sets to
// rename.VariantStyle; field identifiers declared as enum variants need
// rename.VariantStyle.
func WithStyle(style rename.Style) Option {
	return func(c *setConfig) {
		c.style = style
	}
}

// DefaultStyle is the declaration style assumed for a kind.
func DefaultStyle(kind Kind) rename.Style {
	if kind == Field {
		return rename.FieldStyle
	}

	return rename.VariantStyle
}

// New builds a set from names in declaration order. Renamed names must be
// non-empty and pairwise distinct.
func New(kind Kind, names []string, opts ...Option) (*Set, error) {
	if kind != Field && kind != Variant {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}

	cfg := setConfig{style: DefaultStyle(kind)}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Set{
		kind:   kind,
		rule:   cfg.rule,
		style:  cfg.style,
		ids:    make([]Identifier, len(names)),
		names:  make([]string, len(names)),
		byName: make(map[string]int, len(names)),
	}

	for i, declared := range names {
		renamed := cfg.rule.Apply(declared, cfg.style)
		if renamed == "" {
			return nil, fmt.Errorf("%w: %s #%d %q", ErrEmptyName, kind, i, declared)
		}

		if prev, ok := s.byName[renamed]; ok {
			return nil, fmt.Errorf("%w: %s %q and %q both become %q",
				ErrDuplicateName, kind, names[prev], declared, renamed)
		}

		s.byName[renamed] = i
		s.ids[i] = Identifier{Name: renamed, Index: i}
		s.names[i] = renamed
	}

	return s, nil
}

// MustNew is like New but panics on error. Meant for package-level sets
// whose names are known at compile time.
func MustNew(kind Kind, names []string, opts ...Option) *Set {
	s, err := New(kind, names, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

func (s *Set) Kind() Kind { return s.kind }

// Rule is the rename rule the set was built with.
func (s *Set) Rule() rename.Rule { return s.rule }

// Style is the declaration style the rule was applied with.
func (s *Set) Style() rename.Style { return s.style }

func (s *Set) Len() int { return len(s.ids) }

// At returns the identifier at position i.
func (s *Set) At(i uint64) (Identifier, bool) {
	if i >= uint64(len(s.ids)) {
		return Identifier{}, false
	}

	return s.ids[i], true
}

// Lookup finds the identifier whose renamed name equals name exactly.
func (s *Set) Lookup(name string) (Identifier, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Identifier{}, false
	}

	return s.ids[i], true
}

// LookupBytes compares b byte for byte against the UTF-8 encoding of every
// renamed name. Bytes that are not valid UTF-8 never equal a valid name.
func (s *Set) LookupBytes(b []byte) (Identifier, bool) {
	i, ok := s.byName[string(b)]
	if !ok {
		return Identifier{}, false
	}

	return s.ids[i], true
}

// Names returns the renamed names in declaration order.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Identifiers returns a copy of the table.
func (s *Set) Identifiers() []Identifier {
	return append([]Identifier(nil), s.ids...)
}
