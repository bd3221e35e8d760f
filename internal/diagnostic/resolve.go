package diagnostic

import (
	"errors"

	"github.com/rodoufu/serde/identifier"
	"github.com/rodoufu/serde/internal/match"
)

const (
	CodeInvalidIndex     = "invalid_index"
	CodeUnknownName      = "unknown_name"
	CodeConversionFailed = "conversion_failed"
)

// FromError describes a resolution failure. Message is always err.Error(),
// the suggestion only ever lands in Suggestions. It reports false for errors
// that did not come from a resolver or one of the built-in converters.
func FromError(err error, set string) (Diagnostic, bool) {
	diag := Diagnostic{Severity: DiagnosticError, Set: set}
	if err != nil {
		diag.Message = err.Error()
	}

	var indexErr *identifier.InvalidIndexError
	var nameErr *identifier.UnknownNameError
	var convErr *identifier.ConversionError

	switch {
	case errors.As(err, &indexErr):
		diag.Code = CodeInvalidIndex
	case errors.As(err, &nameErr):
		diag.Code = CodeUnknownName
		diag.Subject = nameErr.Value
		if closest, ok := match.Closest(nameErr.Value, nameErr.Allowed); ok {
			diag.Suggestions = []string{"`" + closest + "`"}
		}
	case errors.As(err, &convErr):
		diag.Code = CodeConversionFailed
		diag.Subject = convErr.Token.String()
	default:
		return Diagnostic{}, false
	}

	return diag, true
}
