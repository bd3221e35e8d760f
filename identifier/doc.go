// Package identifier resolves the token found at a field or variant position
// of a self-describing format to one of a fixed, ordered set of declared
// identifiers.
//
// A format may carry the identity of a field or variant as a compact
// unsigned index (binary formats) or as a textual or byte-string name
// (human-readable formats). A Resolver accepts all three shapes without the
// caller choosing a mode in advance.
//
// # Building a set
//
// A Set is built once per schema from the declared names, in declaration
// order, with an optional rename rule applied to every name. Field names are
// assumed snake_case and variant names PascalCase unless WithStyle says
// otherwise:
//
//	fields := identifier.MustNew(identifier.Field, []string{"first_name", "last_name"},
//		identifier.WithRename(rename.Camel))
//
// # Unknown tokens
//
// What happens to a token that matches nothing depends on the resolver's
// policy:
//
//   - Strict: the token is rejected with *InvalidIndexError or
//     *UnknownNameError. Both satisfy errors.Is(err, ErrUnknownIdentifier).
//   - CatchAllUnit: the result is a Fallback outcome without payload.
//   - CatchAllPayload: the original token is handed to the Converter the
//     resolver was built with and its value becomes the Fallback payload.
//     Converter errors are returned as is.
//
// Error messages are stable and meant to be shown to users:
//
//	invalid value: integer `42`, expected variant index 0 <= i < 2
//	unknown field `unknown`, expected `aaa` or `bbb`
//
// A Set and the resolvers built on it are immutable and safe for concurrent use.
package identifier
