package dsl

import (
	"iter"
	"math"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
)

const (
	numberNoun = "number"
	// defaultStep spaces sequential samples when no divisor is set.
	defaultStep = 0.1
	// maxSafeInteger replaces infinite bounds for random sampling (2^53-1).
	maxSafeInteger = 1<<53 - 1
)

// NumberSchema constrains float values by range and divisibility. The zero
// divisor means "no divisibility constraint".
type NumberSchema struct {
	skema.Base
	min         float64
	max         float64
	divisibleBy float64
}

var number = NumberSchema{
	Base: skema.NewBase(skema.KindNumber),
	min:  math.Inf(-1),
	max:  math.Inf(1),
}

// Number returns the unconstrained number schema.
func Number() NumberSchema { return number }

func (s NumberSchema) clone() NumberSchema {
	c := s
	c.Base = s.Base.Derive()
	return c
}

// Max returns a copy accepting values up to and including maximum.
func (s NumberSchema) Max(maximum float64) NumberSchema {
	c := s.clone()
	c.max = maximum
	return c
}

// Min returns a copy accepting values from minimum upwards.
func (s NumberSchema) Min(minimum float64) NumberSchema {
	c := s.clone()
	c.min = minimum
	return c
}

// DivisibleBy returns a copy that only accepts multiples of d. 0 removes the
// constraint.
func (s NumberSchema) DivisibleBy(d float64) NumberSchema {
	c := s.clone()
	c.divisibleBy = d
	return c
}

// Integer is DivisibleBy(1).
func (s NumberSchema) Integer() NumberSchema { return s.DivisibleBy(1) }

// Positive is Min(0).
func (s NumberSchema) Positive() NumberSchema { return s.Min(0) }

// Optional returns a copy that also accepts null and undefined.
func (s NumberSchema) Optional() NumberSchema {
	c := s
	c.Base = s.Base.WithOptional()
	return c
}

// MaxValue reports the inclusive maximum; +Inf when unbounded.
func (s NumberSchema) MaxValue() float64 { return s.max }

// MinValue reports the inclusive minimum; -Inf when unbounded.
func (s NumberSchema) MinValue() float64 { return s.min }

// Divisor reports the divisibility constraint; 0 when unset.
func (s NumberSchema) Divisor() float64 { return s.divisibleBy }

// Info describes the bounds and divisor.
func (s NumberSchema) Info() skema.Info {
	return skema.Info{
		SchemaName: skema.KindNumber.String(),
		Optional:   s.IsOptional(),
		Constraints: map[string]any{
			"max":         s.max,
			"min":         s.min,
			"divisibleBy": s.divisibleBy,
		},
	}
}

// Errors reports NaN constraints, a negative divisor and min > max.
func (s NumberSchema) Errors() []string {
	var minGtMax string
	if !math.IsNaN(s.max) && !math.IsNaN(s.min) && s.max < s.min {
		minGtMax = i18n.T(i18n.CodeDeclMinGtMax, map[string]string{
			"min": skema.FormatNumber(s.min),
			"max": skema.FormatNumber(s.max),
		})
	}
	return skema.CollectErrors(
		skema.CheckNumberProperty(s.max, "maximum required value"),
		skema.CheckNumberProperty(s.min, "minimum required value"),
		skema.CheckNumberProperty(s.divisibleBy, "divisor value"),
		skema.CheckNonNegative(s.divisibleBy, "divisor value"),
		minGtMax,
	)
}

// Validate checks presence, type, NaN, max, min and divisibility, in that
// order, and reports the first failure.
func (s NumberSchema) Validate(v any) skema.ValidationResult {
	return s.Cached(v, func() skema.ValidationResult { return s.validate(v) })
}

func (s NumberSchema) validate(v any) skema.ValidationResult {
	if res, done := skema.CheckPresence(s, v, numberNoun); done {
		return res
	}
	f, ok := skema.ToFloat(v)
	if !ok {
		return invalidType(v, numberNoun)
	}
	value := skema.FormatNumber(f)
	switch {
	case math.IsNaN(f):
		return skema.Invalid(i18n.T(i18n.CodeNaN, nil))
	case s.max < f:
		return skema.Invalid(i18n.T(i18n.CodeTooBig, map[string]string{"value": value, "max": skema.FormatNumber(s.max)}))
	case s.min > f:
		return skema.Invalid(i18n.T(i18n.CodeTooSmall, map[string]string{"value": value, "min": skema.FormatNumber(s.min)}))
	case s.divisibleBy > 0 && math.Mod(f, s.divisibleBy) != 0:
		return skema.Invalid(i18n.T(i18n.CodeNotDivisible, map[string]string{"value": value, "divisor": skema.FormatNumber(s.divisibleBy)}))
	}
	return skema.Valid()
}

// CheckSubsetOf compares divisor, max and min after the generic checks.
func (s NumberSchema) CheckSubsetOf(target any) skema.SubsetResult {
	return skema.CheckSubset(s, target, func(t skema.Schema) skema.SubsetResult {
		tn, ok := t.(NumberSchema)
		if !ok {
			return skema.NotASchema()
		}
		return s.checkNumberSubset(tn)
	})
}

func (s NumberSchema) checkNumberSubset(t NumberSchema) skema.SubsetResult {
	switch {
	case !divisibleSubset(s.divisibleBy, t.divisibleBy):
		return skema.NotSubset(i18n.T(i18n.CodeSubsetDivisor, map[string]string{
			"source": skema.FormatNumber(s.divisibleBy),
			"target": skema.FormatNumber(t.divisibleBy),
		}))
	case s.max > t.max:
		return skema.NotSubset(i18n.T(i18n.CodeSubsetMax, map[string]string{
			"target": skema.FormatNumber(t.max),
			"source": skema.FormatNumber(s.max),
		}))
	case s.min < t.min:
		return skema.NotSubset(i18n.T(i18n.CodeSubsetMin, map[string]string{
			"target": skema.FormatNumber(t.min),
			"source": skema.FormatNumber(s.min),
		}))
	}
	return skema.Subset()
}

// divisibleSubset treats 0 as "no constraint": an unconstrained source only
// fits an unconstrained target, while an unconstrained target fits anything.
// Equal divisors always fit, including infinite ones where Mod is NaN.
func divisibleSubset(src, tgt float64) bool {
	switch {
	case src == tgt:
		return true
	case src == 0:
		return tgt == 0
	case tgt == 0:
		return true
	default:
		return math.Mod(src, tgt) == 0
	}
}

// GenerateSequentialData walks a window of MaxAmount steps centred on 0, or
// shifted onto the legal range when that lies entirely on one side of it.
// Samples are aligned to the divisor and never leave [min, max].
func (s NumberSchema) GenerateSequentialData(opts ...skema.GenOpt) iter.Seq[any] {
	opt := skema.CleanGenOpt(opts...)
	step := defaultStep
	if s.divisibleBy > 0 {
		step = s.divisibleBy
	}
	n := opt.MaxAmount
	half := float64(n) * step / 2
	lo, hi := -half, half
	switch {
	case s.min > hi:
		lo, hi = s.min, s.min+2*half
	case s.max < lo:
		lo, hi = s.max-2*half, s.max
	}
	start := math.Max(s.min, lo)
	end := math.Min(s.max, hi)
	if s.divisibleBy > 0 {
		start = math.Ceil(start/s.divisibleBy) * s.divisibleBy
	}
	return func(yield func(any) bool) {
		if math.IsNaN(start) || math.IsNaN(end) {
			return
		}
		for i := 0; i < n; i++ {
			v := start + float64(i)*step
			if v > end {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// GenerateRandomData draws MaxAmount uniform samples from [min, max]. With a
// divisor each sample is rounded toward zero to a multiple of it. Negative
// samples move up and stay in range, but a positive min that is not a
// multiple can be undershot: Min(0.5).Max(1.5).DivisibleBy(1) may yield 0.
func (s NumberSchema) GenerateRandomData(opts ...skema.GenOpt) iter.Seq[any] {
	opt := skema.CleanGenOpt(opts...)
	lo, hi := s.min, s.max
	if math.IsInf(lo, -1) {
		lo = -maxSafeInteger
	}
	if math.IsInf(hi, 1) {
		hi = maxSafeInteger
	}
	diff := hi - lo
	d := s.divisibleBy
	return func(yield func(any) bool) {
		for i := 0; i < opt.MaxAmount; i++ {
			x := opt.Float64()*diff + lo
			if d > 0 {
				x -= math.Mod(x, d)
			}
			if !yield(x) {
				return
			}
		}
	}
}
