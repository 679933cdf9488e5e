package dsl

import (
	"iter"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
)

const (
	stringNoun = "string"
	// unbounded marks a missing maximum length; any negative value does.
	unbounded = -1
	// randomLengthSpread caps random lengths when no maximum is declared.
	randomLengthSpread = 32
	alphabet           = "abcdefghijklmnopqrstuvwxyz"
)

// StringSchema constrains strings by length, counted in runes.
type StringSchema struct {
	skema.Base
	minLength int
	maxLength int
}

var str = StringSchema{Base: skema.NewBase(skema.KindString), maxLength: unbounded}

// String returns the unconstrained string schema.
func String() StringSchema { return str }

func (s StringSchema) clone() StringSchema {
	c := s
	c.Base = s.Base.Derive()
	return c
}

// MinLength returns a copy requiring at least n runes.
func (s StringSchema) MinLength(n int) StringSchema {
	c := s.clone()
	c.minLength = n
	return c
}

// MaxLength returns a copy allowing at most n runes. A negative n removes
// the bound.
func (s StringSchema) MaxLength(n int) StringSchema {
	c := s.clone()
	c.maxLength = n
	return c
}

// Length pins both bounds to n.
func (s StringSchema) Length(n int) StringSchema {
	c := s.clone()
	c.minLength, c.maxLength = n, n
	return c
}

// NonEmpty is MinLength(1).
func (s StringSchema) NonEmpty() StringSchema { return s.MinLength(1) }

// Optional returns a copy that also accepts null and undefined.
func (s StringSchema) Optional() StringSchema {
	c := s
	c.Base = s.Base.WithOptional()
	return c
}

func (s StringSchema) bounded() bool { return s.maxLength >= 0 }

// maxLen reports the maximum length as a float so that unbounded compares as
// +Inf.
func (s StringSchema) maxLen() float64 {
	if !s.bounded() {
		return math.Inf(1)
	}
	return float64(s.maxLength)
}

// Info describes the length bounds; an unbounded maximum is +Inf.
func (s StringSchema) Info() skema.Info {
	return skema.Info{
		SchemaName: skema.KindString.String(),
		Optional:   s.IsOptional(),
		Constraints: map[string]any{
			"minLength": float64(s.minLength),
			"maxLength": s.maxLen(),
		},
	}
}

// Errors reports a negative minimum length and min > max.
func (s StringSchema) Errors() []string {
	var minGtMax string
	if s.bounded() && s.minLength > s.maxLength {
		minGtMax = i18n.T(i18n.CodeDeclMinGtMaxLength, map[string]string{
			"min": strconv.Itoa(s.minLength),
			"max": strconv.Itoa(s.maxLength),
		})
	}
	return skema.CollectErrors(
		skema.CheckNonNegative(float64(s.minLength), "minimum length"),
		minGtMax,
	)
}

// Validate checks presence, type, then maximum and minimum length.
func (s StringSchema) Validate(v any) skema.ValidationResult {
	return s.Cached(v, func() skema.ValidationResult { return s.validate(v) })
}

func (s StringSchema) validate(v any) skema.ValidationResult {
	if res, done := skema.CheckPresence(s, v, stringNoun); done {
		return res
	}
	if skema.TypeOf(v) != stringNoun {
		return invalidType(v, stringNoun)
	}
	n := utf8.RuneCountInString(reflect.ValueOf(v).String())
	switch {
	case s.bounded() && n > s.maxLength:
		return skema.Invalid(i18n.T(i18n.CodeTooLong, map[string]string{"length": strconv.Itoa(n), "max": strconv.Itoa(s.maxLength)}))
	case n < s.minLength:
		return skema.Invalid(i18n.T(i18n.CodeTooShort, map[string]string{"length": strconv.Itoa(n), "min": strconv.Itoa(s.minLength)}))
	}
	return skema.Valid()
}

// CheckSubsetOf compares maximum and minimum length after the generic checks.
func (s StringSchema) CheckSubsetOf(target any) skema.SubsetResult {
	return skema.CheckSubset(s, target, func(t skema.Schema) skema.SubsetResult {
		ts, ok := t.(StringSchema)
		if !ok {
			return skema.NotASchema()
		}
		switch {
		case s.maxLen() > ts.maxLen():
			return skema.NotSubset(i18n.T(i18n.CodeSubsetMaxLength, map[string]string{
				"target": skema.FormatNumber(ts.maxLen()),
				"source": skema.FormatNumber(s.maxLen()),
			}))
		case s.minLength < ts.minLength:
			return skema.NotSubset(i18n.T(i18n.CodeSubsetMinLength, map[string]string{
				"target": strconv.Itoa(ts.minLength),
				"source": strconv.Itoa(s.minLength),
			}))
		}
		return skema.Subset()
	})
}

// GenerateSequentialData yields strings of growing length starting at the
// minimum; the i-th sample repeats the i-th letter of the alphabet.
func (s StringSchema) GenerateSequentialData(opts ...skema.GenOpt) iter.Seq[any] {
	opt := skema.CleanGenOpt(opts...)
	first := max(s.minLength, 0)
	return func(yield func(any) bool) {
		for i := 0; i < opt.MaxAmount; i++ {
			n := first + i
			if s.bounded() && n > s.maxLength {
				return
			}
			if !yield(strings.Repeat(alphabet[i%len(alphabet):i%len(alphabet)+1], n)) {
				return
			}
		}
	}
}

// GenerateRandomData yields lowercase strings with a uniform length between
// the bounds. Without a maximum, lengths stay within a fixed spread above the
// minimum.
func (s StringSchema) GenerateRandomData(opts ...skema.GenOpt) iter.Seq[any] {
	opt := skema.CleanGenOpt(opts...)
	lo := max(s.minLength, 0)
	hi := lo + randomLengthSpread
	if s.bounded() {
		hi = min(hi, s.maxLength)
	}
	return func(yield func(any) bool) {
		if hi < lo {
			return
		}
		b := &strings.Builder{}
		for i := 0; i < opt.MaxAmount; i++ {
			b.Reset()
			n := lo + opt.IntN(hi-lo+1)
			for j := 0; j < n; j++ {
				b.WriteByte(alphabet[opt.IntN(len(alphabet))])
			}
			if !yield(b.String()) {
				return
			}
		}
	}
}
