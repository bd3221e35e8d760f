// Package diagnostic turns identifier resolution and schema failures into
// structured diagnostics: a stable code, the user-facing message, and
// suggestions such as the closest declared name.
package diagnostic
