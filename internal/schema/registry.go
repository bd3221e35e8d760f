package schema

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rodoufu/serde/identifier"
	"github.com/rodoufu/serde/internal/diagnostic"
	"github.com/rodoufu/serde/rename"
	"github.com/rodoufu/serde/token"
)

var ErrUnknownSet = errors.New("unknown identifier set")

type resolveFunc func(token.Token) (identifier.Result[any], error)

// Entry is a built identifier set together with its definition.
type Entry struct {
	Def     SetDef
	Set     *identifier.Set
	Policy  identifier.Policy
	resolve resolveFunc
}

// Resolve resolves tok against the entry's set under its policy.
func (e *Entry) Resolve(tok token.Token) (identifier.Result[any], error) {
	return e.resolve(tok)
}

// Registry holds every set of a schema file, keyed by set name.
type Registry struct {
	entries map[string]*Entry
}

// Build validates f and builds a resolver for every set it declares. The
// returned diagnostics hold the validation findings, plus one info per
// built set, and are returned even when building fails.
func Build(f *File) (*Registry, *diagnostic.Diagnostics, error) {
	diags := Validate(f)
	if diags.HasErrors() {
		return nil, diags, fmt.Errorf("invalid schema: %w", diags.Error())
	}

	reg := &Registry{entries: make(map[string]*Entry, len(f.Sets))}

	for _, def := range f.Sets {
		entry, err := buildEntry(def)
		if err != nil {
			return nil, diags, fmt.Errorf("set %q: %w", def.Name, err)
		}

		reg.entries[def.Name] = entry
		diags.AddInfo("set_built",
			fmt.Sprintf("%s set with %d identifiers, %s style, policy %s",
				entry.Set.Kind(), entry.Set.Len(), entry.Set.Style(), entry.Policy),
			def.Name, "")
	}

	return reg, diags, nil
}

// Lookup returns the entry for a set name.
func (r *Registry) Lookup(name string) (*Entry, error) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSet, name)
	}

	return entry, nil
}

// Resolve resolves tok against the named set.
func (r *Registry) Resolve(name string, tok token.Token) (identifier.Result[any], error) {
	entry, err := r.Lookup(name)
	if err != nil {
		return identifier.Result[any]{}, err
	}

	return entry.Resolve(tok)
}

// Names returns the set names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func buildEntry(def SetDef) (*Entry, error) {
	kind, err := identifier.ParseKind(def.Kind)
	if err != nil {
		return nil, err
	}

	rule, err := rename.ParseRule(def.RenameAll)
	if err != nil {
		return nil, err
	}

	style, err := parseStyle(def.Style, kind)
	if err != nil {
		return nil, err
	}

	policy, err := identifier.ParsePolicy(def.Policy)
	if err != nil {
		return nil, err
	}

	set, err := identifier.New(kind, def.Identifiers, identifier.WithRename(rule), identifier.WithStyle(style))
	if err != nil {
		return nil, err
	}

	entry := &Entry{Def: def, Set: set, Policy: policy}

	switch policy {
	case identifier.CatchAllUnit:
		entry.resolve = unitResolve(identifier.NewCatchAllUnit(set))
	case identifier.CatchAllPayload:
		convert, err := payloadConverter(def.Payload)
		if err != nil {
			return nil, err
		}

		entry.resolve = identifier.NewCatchAll(set, convert).Resolve
	default:
		entry.resolve = unitResolve(identifier.NewStrict(set))
	}

	return entry, nil
}

func payloadConverter(payload string) (identifier.Converter[any], error) {
	switch payload {
	case PayloadAny, "":
		return identifier.IntoAny, nil
	case PayloadToken:
		return erase(identifier.IntoToken), nil
	case PayloadString:
		return erase(identifier.IntoString), nil
	case PayloadU8:
		return erase(identifier.IntoUnsigned[uint8]()), nil
	case PayloadU16:
		return erase(identifier.IntoUnsigned[uint16]()), nil
	case PayloadU32:
		return erase(identifier.IntoUnsigned[uint32]()), nil
	case PayloadU64:
		return erase(identifier.IntoUnsigned[uint64]()), nil
	default:
		return nil, fmt.Errorf("unknown payload type %q", payload)
	}
}

// erase widens a typed converter to any, keeping its errors untouched.
func erase[T any](convert identifier.Converter[T]) identifier.Converter[any] {
	return func(tok token.Token) (any, error) {
		v, err := convert(tok)
		if err != nil {
			return nil, err
		}

		return v, nil
	}
}

func unitResolve(r *identifier.Resolver[identifier.Unit]) resolveFunc {
	return func(tok token.Token) (identifier.Result[any], error) {
		res, err := r.Resolve(tok)
		if err != nil {
			return identifier.Result[any]{}, err
		}

		return identifier.Result[any]{Outcome: res.Outcome, Identifier: res.Identifier}, nil
	}
}
