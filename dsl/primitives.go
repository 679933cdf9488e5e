package dsl

import (
	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
)

// Compile-time checks that every kind satisfies the shared contract.
var (
	_ skema.Schema = NumberSchema{}
	_ skema.Schema = BooleanSchema{}
	_ skema.Schema = StringSchema{}
)

func invalidType(v any, noun string) skema.ValidationResult {
	return skema.Invalid(i18n.T(i18n.CodeInvalidType, map[string]string{
		"type": skema.TypeOf(v),
		"kind": noun,
	}))
}
