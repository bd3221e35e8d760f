// Package match provides identifier tokenization, Levenshtein distance
// calculation and closest-name suggestions for unknown identifiers.
//
// Key functions:
//   - Words: splits an identifier into words for case-style rewrites
//   - NormalizeIdent: normalizes identifiers for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the declared name nearest to an unknown one
package match
