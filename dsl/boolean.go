package dsl

import (
	"iter"

	skema "github.com/reoring/skema"
)

const booleanNoun = "boolean"

// BooleanSchema accepts true and false. It has no constraints besides
// optionality.
type BooleanSchema struct {
	skema.Base
}

var boolean = BooleanSchema{Base: skema.NewBase(skema.KindBoolean)}

// Boolean returns the boolean schema.
func Boolean() BooleanSchema { return boolean }

// Optional returns a copy that also accepts null and undefined.
func (s BooleanSchema) Optional() BooleanSchema {
	return BooleanSchema{Base: s.Base.WithOptional()}
}

// Info describes the schema; booleans carry no constraints.
func (s BooleanSchema) Info() skema.Info {
	return skema.Info{SchemaName: skema.KindBoolean.String(), Optional: s.IsOptional()}
}

// Errors is always empty.
func (s BooleanSchema) Errors() []string { return skema.CollectErrors() }

// Validate accepts any value of boolean kind.
func (s BooleanSchema) Validate(v any) skema.ValidationResult {
	return s.Cached(v, func() skema.ValidationResult {
		if res, done := skema.CheckPresence(s, v, booleanNoun); done {
			return res
		}
		if skema.TypeOf(v) != booleanNoun {
			return invalidType(v, booleanNoun)
		}
		return skema.Valid()
	})
}

// CheckSubsetOf holds for every boolean target that passes the generic checks.
func (s BooleanSchema) CheckSubsetOf(target any) skema.SubsetResult {
	return skema.CheckSubset(s, target, func(skema.Schema) skema.SubsetResult {
		return skema.Subset()
	})
}

// GenerateSequentialData yields false then true whatever the options say.
func (s BooleanSchema) GenerateSequentialData(opts ...skema.GenOpt) iter.Seq[any] {
	return func(yield func(any) bool) {
		if !yield(false) {
			return
		}
		yield(true)
	}
}

// GenerateRandomData yields MaxAmount fair coin flips.
func (s BooleanSchema) GenerateRandomData(opts ...skema.GenOpt) iter.Seq[any] {
	opt := skema.CleanGenOpt(opts...)
	return func(yield func(any) bool) {
		for i := 0; i < opt.MaxAmount; i++ {
			if !yield(opt.IntN(2) == 1) {
				return
			}
		}
	}
}
