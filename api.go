package skema

import (
	"iter"

	"github.com/reoring/skema/i18n"
)

// Schema is the contract shared by every kind variant. Implementations are
// immutable values: fluent mutators on the concrete types return new schemas
// and never touch the receiver.
//
// The interface is sealed by embedding Base, which carries the cross-cutting
// state (kind, optionality, validation cache).
type Schema interface {
	// Kind reports the variant tag. It never changes for an instance.
	Kind() Kind
	// IsOptional reports whether null and undefined are accepted.
	IsOptional() bool

	// Validate checks a single value and reports the first violation.
	Validate(v any) ValidationResult
	// CheckSubsetOf reports whether every value accepted by the receiver is
	// also accepted by target. target may be anything; non-schemas are
	// reported, not rejected with a panic.
	CheckSubsetOf(target any) SubsetResult
	// Errors lints the schema declaration itself. An empty list means the
	// constraints are self-consistent.
	Errors() []string
	// Info describes the schema for debugging.
	Info() Info

	// GenerateSequentialData yields a deterministic, restartable walk over the
	// legal value space.
	GenerateSequentialData(opts ...GenOpt) iter.Seq[any]
	// GenerateRandomData yields independent random samples of the legal value
	// space.
	GenerateRandomData(opts ...GenOpt) iter.Seq[any]

	schemaBase() Base
}

// Base holds the state every kind shares. Kind variants embed it by value.
type Base struct {
	kind     Kind
	optional bool
	cache    *ResultCache
}

// NewBase returns the state of an unconstrained, required schema of kind k.
func NewBase(k Kind) Base {
	return Base{kind: k, cache: newResultCache(k)}
}

func (b Base) schemaBase() Base { return b }

// Kind reports the variant tag.
func (b Base) Kind() Kind { return b.kind }

// IsOptional reports whether null and undefined are valid values.
func (b Base) IsOptional() bool { return b.optional }

// Derive returns a copy for a freshly built schema. The copy keeps kind and
// optionality but starts with an empty validation cache.
func (b Base) Derive() Base {
	b.cache = newResultCache(b.kind)
	return b
}

// WithOptional derives a copy that accepts null and undefined.
func (b Base) WithOptional() Base {
	d := b.Derive()
	d.optional = true
	return d
}

// Cached memoizes compute for v on this instance.
func (b Base) Cached(v any, compute func() ValidationResult) ValidationResult {
	if b.cache == nil {
		return compute()
	}
	return b.cache.Do(v, compute)
}

// CacheLen reports how many validation results this instance has memoized.
func (b Base) CacheLen() int {
	if b.cache == nil {
		return 0
	}
	return b.cache.Len()
}

// CheckPresence handles null and undefined for every kind. done is true when
// v was one of them and res is final.
func CheckPresence(s Schema, v any, noun string) (res ValidationResult, done bool) {
	switch {
	case IsNull(v):
		if s.IsOptional() {
			return Valid(), true
		}
		return Invalid(i18n.T(i18n.CodeNullNotKind, map[string]string{"kind": noun})), true
	case v == Undefined:
		if s.IsOptional() {
			return Valid(), true
		}
		return Invalid(i18n.T(i18n.CodeUndefinedNotKind, map[string]string{"kind": noun})), true
	}
	return ValidationResult{}, false
}

// CheckSubset is the generic half of every CheckSubsetOf. It rejects
// non-schemas, kind mismatches and optionality widening in that order, then
// hands the target to structural, which compares kind-specific constraints.
func CheckSubset(src Schema, target any, structural func(target Schema) SubsetResult) SubsetResult {
	switch {
	case IsNull(target):
		return NotSubset(i18n.T(i18n.CodeSubsetTargetNull, nil))
	case target == Undefined:
		return NotSubset(i18n.T(i18n.CodeSubsetTargetUndefined, nil))
	}
	t, ok := target.(Schema)
	if !ok {
		if typ := TypeOf(target); typ != "object" {
			return NotSubset(i18n.T(i18n.CodeSubsetTargetPrimitive, map[string]string{"type": typ}))
		}
		return NotASchema()
	}
	if src.Kind() != t.Kind() {
		return NotSubset(i18n.T(i18n.CodeSubsetKindMismatch, map[string]string{
			"source": src.Kind().String(),
			"target": t.Kind().String(),
		}))
	}
	if src.IsOptional() && !t.IsOptional() {
		return NotSubset(i18n.T(i18n.CodeSubsetOptional, nil))
	}
	return structural(t)
}

// NotASchema is the reason reported for objects that lack schema shape.
func NotASchema() SubsetResult {
	return NotSubset(i18n.T(i18n.CodeSubsetTargetNotSchema, nil))
}

// Is reports whether v is accepted by s.
func Is(s Schema, v any) bool { return s.Validate(v).OK() }

// ErrorsOf returns the declaration errors of s as an error, or nil when s is
// self-consistent.
func ErrorsOf(s Schema) error {
	if errs := s.Errors(); len(errs) > 0 {
		return SchemaErrors(errs)
	}
	return nil
}
