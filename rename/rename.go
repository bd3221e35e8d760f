// Package rename implements the case-style rewrites that may be applied
// uniformly to every declared identifier of a set before it is used for
// matching.
package rename

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrUnknownRule  = errors.New("unknown rename rule")
	ErrUnknownStyle = errors.New("unknown declaration style")
)

// Rule is a uniform rename transform. The zero value leaves names unchanged.
type Rule int

const (
	None Rule = iota
	Lower
	Upper
	Pascal
	Camel
	Snake
	ScreamingSnake
	Kebab
	ScreamingKebab
)

var ruleNames = [...]string{
	None:           "",
	Lower:          "lowercase",
	Upper:          "UPPERCASE",
	Pascal:         "PascalCase",
	Camel:          "camelCase",
	Snake:          "snake_case",
	ScreamingSnake: "SCREAMING_SNAKE_CASE",
	Kebab:          "kebab-case",
	ScreamingKebab: "SCREAMING-KEBAB-CASE",
}

// ParseRule accepts the rule spellings used in schema files, e.g. "snake_case".
// The empty string and "none" select None.
func ParseRule(s string) (Rule, error) {
	if s == "none" {
		return None, nil
	}

	for i, name := range ruleNames {
		if name == s {
			return Rule(i), nil
		}
	}

	return None, fmt.Errorf("%w %q", ErrUnknownRule, s)
}

// String returns the schema spelling of the rule, "none" for None.
func (r Rule) String() string {
	if r == None {
		return "none"
	}

	if r < 0 || int(r) >= len(ruleNames) {
		return fmt.Sprintf("Rule(%d)", int(r))
	}

	return ruleNames[r]
}

func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := ParseRule(string(text))
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}

// Style is the case convention declared names follow before renaming.
type Style int

const (
	// VariantStyle names are PascalCase, like "VeryTasty".
	VariantStyle Style = iota + 1
	// FieldStyle names are snake_case, like "very_tasty".
	FieldStyle
)

func (s Style) String() string {
	switch s {
	case VariantStyle:
		return "variant"
	case FieldStyle:
		return "field"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle accepts "variant" and "field".
func ParseStyle(s string) (Style, error) {
	switch s {
	case "variant":
		return VariantStyle, nil
	case "field":
		return FieldStyle, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownStyle, s)
	}
}

// Apply rewrites a declared name of the given style according to the rule.
func (r Rule) Apply(name string, style Style) string {
	if style == FieldStyle {
		return r.ApplyToField(name)
	}

	return r.ApplyToVariant(name)
}

// ApplyToVariant rewrites a PascalCase name. Every uppercase letter after the
// first starts a new word, so "HTTPServer" becomes "h_t_t_p_server" in
// snake_case.
func (r Rule) ApplyToVariant(name string) string {
	switch r {
	case Lower:
		return asciiLower(name)
	case Upper:
		return asciiUpper(name)
	case Camel:
		return lowerFirst(name)
	case Snake:
		return splitUpper(name, '_')
	case ScreamingSnake:
		return asciiUpper(splitUpper(name, '_'))
	case Kebab:
		return splitUpper(name, '-')
	case ScreamingKebab:
		return asciiUpper(splitUpper(name, '-'))
	default:
		return name
	}
}

// ApplyToField rewrites a snake_case name. Names are left alone by the
// rules they already satisfy.
func (r Rule) ApplyToField(name string) string {
	switch r {
	case Upper, ScreamingSnake:
		return asciiUpper(name)
	case Pascal:
		return pascalFromSnake(name)
	case Camel:
		return lowerFirst(pascalFromSnake(name))
	case Kebab:
		return strings.ReplaceAll(name, "_", "-")
	case ScreamingKebab:
		return strings.ReplaceAll(asciiUpper(name), "_", "-")
	default:
		return name
	}
}

func splitUpper(name string, sep rune) string {
	var b strings.Builder

	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(sep)
		}

		b.WriteRune(toASCIILower(r))
	}

	return b.String()
}

func pascalFromSnake(name string) string {
	var b strings.Builder

	capitalize := true
	for _, r := range name {
		switch {
		case r == '_':
			capitalize = true
		case capitalize:
			b.WriteRune(toASCIIUpper(r))
			capitalize = false
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// lowerFirst lowers the first byte only when it is an ASCII capital.
func lowerFirst(name string) string {
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return name
	}

	return string(name[0]+'a'-'A') + name[1:]
}

func asciiLower(s string) string { return strings.Map(toASCIILower, s) }

func asciiUpper(s string) string { return strings.Map(toASCIIUpper, s) }

func toASCIILower(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + 'a' - 'A'
	}

	return r
}

func toASCIIUpper(r rune) rune {
	if 'a' <= r && r <= 'z' {
		return r - ('a' - 'A')
	}

	return r
}
