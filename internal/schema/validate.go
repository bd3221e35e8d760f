package schema

import (
	"errors"
	"fmt"

	"github.com/rodoufu/serde/identifier"
	"github.com/rodoufu/serde/internal/diagnostic"
	"github.com/rodoufu/serde/internal/match"
	"github.com/rodoufu/serde/rename"
)

var validPayloads = map[string]struct{}{
	PayloadAny:    {},
	PayloadToken:  {},
	PayloadString: {},
	PayloadU8:     {},
	PayloadU16:    {},
	PayloadU32:    {},
	PayloadU64:    {},
}

// Validate checks a schema file without building it. Every identifier set
// that validates cleanly can be built by Build.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported schema version %q", f.Version), "", f.Version)
	}

	if len(f.Sets) == 0 {
		res.AddWarning("no_sets", "schema declares no identifier sets", "", "")
	}

	seenSets := map[string]struct{}{}

	for i := range f.Sets {
		def := &f.Sets[i]

		if def.Name == "" {
			res.AddError("set_name_missing", fmt.Sprintf("set #%d has no name", i), "", "")
		} else if _, ok := seenSets[def.Name]; ok {
			res.AddError("duplicate_set", fmt.Sprintf("duplicate set %q", def.Name), def.Name, def.Name)
			continue
		}

		seenSets[def.Name] = struct{}{}

		res.Merge(validateSet(def))
	}

	return res
}

func validateSet(def *SetDef) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	kind, kindErr := identifier.ParseKind(def.Kind)
	if kindErr != nil {
		res.Add(invalidOption("invalid_kind", kindErr, def.Name, def.Kind, kindSpellings()))
	}

	rule, ruleErr := rename.ParseRule(def.RenameAll)
	if ruleErr != nil {
		res.Add(invalidOption("invalid_rename", ruleErr, def.Name, def.RenameAll, ruleSpellings()))
	}

	style, styleErr := parseStyle(def.Style, kind)
	if styleErr != nil {
		res.Add(invalidOption("invalid_style", styleErr, def.Name, def.Style, styleSpellings()))
	}

	policy, err := identifier.ParsePolicy(def.Policy)
	if err != nil {
		res.Add(invalidOption("invalid_policy", err, def.Name, def.Policy, policySpellings()))
	}

	if def.Payload != "" {
		if _, ok := validPayloads[def.Payload]; !ok {
			res.AddError("invalid_payload", fmt.Sprintf("unknown payload type %q", def.Payload), def.Name, def.Payload)
		} else if policy != identifier.CatchAllPayload {
			res.AddWarning("payload_ignored",
				fmt.Sprintf("payload %q has no effect with policy %s", def.Payload, def.Policy), def.Name, def.Payload)
		}
	}

	if def.Fallback != "" && policy == identifier.Strict {
		res.AddWarning("fallback_ignored", "fallback has no effect with a strict policy", def.Name, def.Fallback)
	}

	if kindErr != nil || ruleErr != nil || styleErr != nil {
		return res
	}

	set, err := identifier.New(kind, def.Identifiers, identifier.WithRename(rule), identifier.WithStyle(style))
	if err != nil {
		if errors.Is(err, identifier.ErrDuplicateName) {
			res.AddError("duplicate_identifier", err.Error(), def.Name, "")
		} else {
			res.AddError("invalid_set", err.Error(), def.Name, "")
		}

		return res
	}

	if def.Fallback != "" {
		if id, ok := set.Lookup(rule.Apply(def.Fallback, set.Style())); ok {
			res.AddError("fallback_collides",
				fmt.Sprintf("fallback %q shadows identifier %q", def.Fallback, id.Name), def.Name, def.Fallback)
		}
	}

	return res
}

// parseStyle resolves the declared style, defaulting from kind when unset.
func parseStyle(s string, kind identifier.Kind) (rename.Style, error) {
	if s == "" {
		return identifier.DefaultStyle(kind), nil
	}

	return rename.ParseStyle(s)
}

// invalidOption reports an unrecognized option value, suggesting the closest
// accepted spelling.
func invalidOption(code string, err error, set, value string, accepted []string) diagnostic.Diagnostic {
	diag := diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     code,
		Message:  err.Error(),
		Set:      set,
		Subject:  value,
	}

	if closest, ok := match.Closest(value, accepted); ok {
		diag.Suggestions = []string{fmt.Sprintf("%q", closest)}
	}

	return diag
}

func kindSpellings() []string {
	return []string{identifier.Field.String(), identifier.Variant.String()}
}

func styleSpellings() []string {
	return []string{rename.VariantStyle.String(), rename.FieldStyle.String()}
}

func policySpellings() []string {
	return []string{identifier.Strict.String(), identifier.CatchAllUnit.String(), identifier.CatchAllPayload.String()}
}

func ruleSpellings() []string {
	var names []string
	for r := rename.Lower; r <= rename.ScreamingKebab; r++ {
		names = append(names, r.String())
	}

	return names
}
