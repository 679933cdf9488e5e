package dsl_test

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"reflect"
	"slices"
	"strings"
	"testing"

	skema "github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

func TestNumber_Validate(t *testing.T) {
	s := g.Number()

	// ok
	for _, v := range []any{0, -1, 1.5, int8(3), uint64(7), float32(2.5), json.Number("42"), math.Inf(1)} {
		if res := s.Validate(v); !res.OK() {
			t.Fatalf("expected %v to be valid, got %q", v, res.Error)
		}
	}

	cases := []struct {
		v    any
		want string
	}{
		{nil, "value = null is not a number"},
		{skema.Undefined, "value = undefined is not a number"},
		{"1", "value of type string is not a number"},
		{true, "value of type boolean is not a number"},
		{map[string]any{}, "value of type object is not a number"},
		{func() {}, "value of type function is not a number"},
		{json.Number("abc"), "value of type string is not a number"},
		{math.NaN(), `value is NaN, "not a number"`},
	}
	for _, tc := range cases {
		if got := s.Validate(tc.v).Error; got != tc.want {
			t.Fatalf("Validate(%#v): want %q, got %q", tc.v, tc.want, got)
		}
	}
}

func TestNumber_ValidateConstraints(t *testing.T) {
	if got := g.Number().Max(10).Validate(11); got != (skema.ValidationResult{Error: "number = 11 is bigger than required maximum = 10"}) {
		t.Fatalf("unexpected max result: %#v", got)
	}
	if got := g.Number().Min(0).Validate(-1).Error; !strings.Contains(got, "is smaller than required minimum") {
		t.Fatalf("unexpected min result: %q", got)
	}
	if got := g.Number().DivisibleBy(2).Validate(3).Error; !strings.Contains(got, "is not divisible by") {
		t.Fatalf("unexpected divisibility result: %q", got)
	}
	if got := g.Number().DivisibleBy(0.5).Validate(1.25).Error; got != "number = 1.25 is not divisible by = 0.5" {
		t.Fatalf("unexpected fractional divisor result: %q", got)
	}
	if res := g.Number().Integer().Validate(-4); !res.OK() {
		t.Fatalf("expected -4 to be an integer, got %q", res.Error)
	}
}

func TestNumber_ValidateFirstViolationWins(t *testing.T) {
	s := g.Number().Max(10).Min(5).DivisibleBy(3)
	// 20 breaks max and divisibility; max is reported
	if got := s.Validate(20).Error; got != "number = 20 is bigger than required maximum = 10" {
		t.Fatalf("unexpected: %q", got)
	}
	// 1 breaks min and divisibility; min is reported
	if got := s.Validate(1).Error; got != "number = 1 is smaller than required minimum = 5" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := s.Validate(7).Error; got != "number = 7 is not divisible by = 3" {
		t.Fatalf("unexpected: %q", got)
	}
	if !s.Validate(9).OK() {
		t.Fatalf("9 should be valid")
	}
}

func TestNumber_ValidateInconsistentSchemaStillRuns(t *testing.T) {
	s := g.Number().Min(10).Max(1)
	if len(s.Errors()) == 0 {
		t.Fatalf("expected declaration errors")
	}
	if got := s.Validate(5).Error; got != "number = 5 is bigger than required maximum = 1" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestNumber_Optional(t *testing.T) {
	s := g.Number().Max(3).Optional()
	if !s.Validate(nil).OK() || !s.Validate(skema.Undefined).OK() {
		t.Fatalf("optional number should accept null and undefined")
	}
	var p *int
	if !s.Validate(p).OK() {
		t.Fatalf("nil pointer should count as null")
	}
	// optional survives later constraint changes
	if !s.Min(1).IsOptional() || !s.DivisibleBy(1).IsOptional() {
		t.Fatalf("constraint mutators must preserve optional")
	}
	if g.Number().IsOptional() {
		t.Fatalf("base number must stay required")
	}
}

func TestNumber_Immutability(t *testing.T) {
	base := g.Number()
	_ = base.Max(1).Min(0).DivisibleBy(2).Optional()
	info := base.Info()
	want := skema.Info{
		SchemaName:  "NumberSchema",
		Constraints: map[string]any{"max": math.Inf(1), "min": math.Inf(-1), "divisibleBy": 0.0},
	}
	if !reflect.DeepEqual(info, want) {
		t.Fatalf("base schema changed: %#v", info)
	}

	a := base.Max(10)
	b := a.Max(20)
	if a.MaxValue() != 10 || b.MaxValue() != 20 {
		t.Fatalf("derived schemas share state: a=%v b=%v", a.MaxValue(), b.MaxValue())
	}
}

func TestNumber_MutatorsIdempotentAndLastWriteWins(t *testing.T) {
	if !reflect.DeepEqual(g.Number().Max(5).Max(5).Info(), g.Number().Max(5).Info()) {
		t.Fatalf("Max(5).Max(5) should equal Max(5)")
	}
	if got := g.Number().Max(5).Max(7).MaxValue(); got != 7 {
		t.Fatalf("last write should win, got %v", got)
	}
	if !reflect.DeepEqual(g.Number().Min(1).Max(2).Info(), g.Number().Max(2).Min(1).Info()) {
		t.Fatalf("disjoint mutators should commute")
	}
	if g.Number().Integer().Divisor() != 1 || g.Number().Positive().MinValue() != 0 {
		t.Fatalf("Integer/Positive shorthands are wrong")
	}
}

func TestNumber_Errors(t *testing.T) {
	if errs := g.Number().Errors(); errs == nil || len(errs) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", errs)
	}
	if errs := g.Number().Min(5).Max(5).Errors(); len(errs) != 0 {
		t.Fatalf("min == max is consistent, got %v", errs)
	}

	errs := g.Number().Min(3).Max(1).Errors()
	if len(errs) != 1 || errs[0] != "required minimum value = 3 is greater than required maximum = 1" {
		t.Fatalf("unexpected errors: %v", errs)
	}

	// accumulated, not short-circuited
	errs = g.Number().Max(math.NaN()).Min(math.NaN()).DivisibleBy(-2).Errors()
	want := []string{
		`maximum required value is NaN, "not a number"`,
		`minimum required value is NaN, "not a number"`,
		"divisor value = -2 is negative",
	}
	if !slices.Equal(errs, want) {
		t.Fatalf("unexpected errors:\n got %v\nwant %v", errs, want)
	}

	// min > max is only checked for well-formed bounds
	errs = g.Number().Max(math.NaN()).Min(3).Errors()
	if len(errs) != 1 {
		t.Fatalf("expected only the NaN error, got %v", errs)
	}

	if err := skema.ErrorsOf(g.Number().Min(3).Max(1)); err == nil {
		t.Fatalf("expected error from ErrorsOf")
	} else if se, ok := skema.AsSchemaErrors(err); !ok || len(se) != 1 {
		t.Fatalf("expected SchemaErrors, got %v", err)
	}
}

func TestNumber_Info(t *testing.T) {
	info := g.Number().Min(1).Max(9).DivisibleBy(2).Optional().Info()
	want := skema.Info{
		SchemaName:  "NumberSchema",
		Optional:    true,
		Constraints: map[string]any{"max": 9.0, "min": 1.0, "divisibleBy": 2.0},
	}
	if !reflect.DeepEqual(info, want) {
		t.Fatalf("unexpected info: %#v", info)
	}
}

func TestNumber_CheckSubsetOf(t *testing.T) {
	cases := []struct {
		name   string
		src    g.NumberSchema
		target any
		want   skema.SubsetResult
	}{
		{"reflexive", g.Number(), g.Number(), skema.SubsetResult{IsSubset: true}},
		{"reflexive constrained", g.Number().Min(1).Max(2).DivisibleBy(0.5), g.Number().Min(1).Max(2).DivisibleBy(0.5), skema.SubsetResult{IsSubset: true}},
		{"narrower range", g.Number().Min(2).Max(3), g.Number().Min(1).Max(4), skema.SubsetResult{IsSubset: true}},
		{"multiple divisor", g.Number().DivisibleBy(6), g.Number().DivisibleBy(3), skema.SubsetResult{IsSubset: true}},
		{"unconstrained target divisor", g.Number().DivisibleBy(6), g.Number(), skema.SubsetResult{IsSubset: true}},
		{"unconstrained source divisor", g.Number(), g.Number().DivisibleBy(2),
			skema.SubsetResult{Reason: "source division check value = 0 is not divisible by target value = 2"}},
		{"non-multiple divisor", g.Number().DivisibleBy(4), g.Number().DivisibleBy(3),
			skema.SubsetResult{Reason: "source division check value = 4 is not divisible by target value = 3"}},
		{"max too big", g.Number().Max(10), g.Number().Max(5),
			skema.SubsetResult{Reason: "target maximum value = 5 is smaller than source value = 10"}},
		{"unbounded max", g.Number(), g.Number().Max(5),
			skema.SubsetResult{Reason: "target maximum value = 5 is smaller than source value = Infinity"}},
		{"min too small", g.Number().Min(0), g.Number().Min(1),
			skema.SubsetResult{Reason: "target minimum value = 1 is bigger than source value = 0"}},
		{"divisor checked before max", g.Number().Max(10).DivisibleBy(3), g.Number().Max(5).DivisibleBy(2),
			skema.SubsetResult{Reason: "source division check value = 3 is not divisible by target value = 2"}},
		{"infinite divisor into itself", g.Number().DivisibleBy(math.Inf(1)), g.Number().DivisibleBy(math.Inf(1)),
			skema.SubsetResult{IsSubset: true}},
		{"infinite divisor into finite", g.Number().DivisibleBy(math.Inf(1)), g.Number().DivisibleBy(2),
			skema.SubsetResult{Reason: "source division check value = Infinity is not divisible by target value = 2"}},
		{"required into optional", g.Number(), g.Number().Optional(), skema.SubsetResult{IsSubset: true}},
		{"optional into required", g.Number().Optional(), g.Number(),
			skema.SubsetResult{Reason: "source schema allows null values while target does not"}},
		{"null", g.Number(), nil, skema.SubsetResult{Reason: "target schema is null"}},
		{"undefined", g.Number(), skema.Undefined, skema.SubsetResult{Reason: "target schema is undefined"}},
		{"primitive", g.Number(), 1, skema.SubsetResult{Reason: "target of type number is not a schema"}},
		{"string", g.Number(), "x", skema.SubsetResult{Reason: "target of type string is not a schema"}},
		{"empty object", g.Number(), map[string]any{}, skema.SubsetResult{Reason: "target object is not a schema"}},
		{"struct", g.Number(), struct{ Max float64 }{}, skema.SubsetResult{Reason: "target object is not a schema"}},
		{"other kind", g.Number(), g.Boolean(), skema.SubsetResult{Reason: "NumberSchema cannot be a subset of BooleanSchema"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.src.CheckSubsetOf(tc.target); got != tc.want {
				t.Fatalf("want %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestNumber_OptionalNeverSubsetOfRequired(t *testing.T) {
	for _, s := range []g.NumberSchema{g.Number(), g.Number().Max(1), g.Number().Integer().Min(-3), g.Number().DivisibleBy(math.Inf(1))} {
		if s.Optional().CheckSubsetOf(s).IsSubset {
			t.Fatalf("optional %v must not be a subset of required", s.Info())
		}
		if !s.CheckSubsetOf(s).IsSubset {
			t.Fatalf("%v must be a subset of itself", s.Info())
		}
	}
}

func collect(seq func(func(any) bool)) []any {
	var out []any
	seq(func(v any) bool {
		out = append(out, v)
		return true
	})
	return out
}

func TestNumber_GenerateSequentialData(t *testing.T) {
	got := collect(g.Number().Integer().GenerateSequentialData(skema.GenOpt{MaxAmount: 10}))
	want := []any{-5.0, -4.0, -3.0, -2.0, -1.0, 0.0, 1.0, 2.0, 3.0, 4.0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected sequence: %v", got)
	}

	// restartable: a second run yields the identical sequence
	seq := g.Number().GenerateSequentialData(skema.GenOpt{MaxAmount: 7})
	first, second := collect(seq), collect(seq)
	if !reflect.DeepEqual(first, second) || len(first) != 7 {
		t.Fatalf("sequence not restartable: %v vs %v", first, second)
	}

	// default amount
	if n := len(collect(g.Number().GenerateSequentialData())); n != skema.DefaultMaxAmount {
		t.Fatalf("expected %d samples, got %d", skema.DefaultMaxAmount, n)
	}
}

func TestNumber_GenerateSequentialDataStaysLegal(t *testing.T) {
	schemas := []g.NumberSchema{
		g.Number(),
		g.Number().Min(0).Max(1),
		g.Number().Positive(),
		g.Number().Min(1000).DivisibleBy(7),
		g.Number().Max(-1000),
		g.Number().Min(-3.5).Max(3.5).DivisibleBy(2),
	}
	for _, s := range schemas {
		vals := collect(s.GenerateSequentialData(skema.GenOpt{MaxAmount: 20}))
		if len(vals) == 0 || len(vals) > 20 {
			t.Fatalf("%v: unexpected sample count %d", s.Info(), len(vals))
		}
		for i, v := range vals {
			if res := s.Validate(v); !res.OK() {
				t.Fatalf("%v: sample %v invalid: %s", s.Info(), v, res.Error)
			}
			if i > 0 && v.(float64) <= vals[i-1].(float64) {
				t.Fatalf("%v: samples not increasing: %v", s.Info(), vals)
			}
		}
	}

	if vals := collect(g.Number().Min(10).Max(1).GenerateSequentialData()); len(vals) != 0 {
		t.Fatalf("inconsistent range should yield nothing, got %v", vals)
	}
}

func TestNumber_GenerateSequentialDataEarlyStop(t *testing.T) {
	n := 0
	for range g.Number().GenerateSequentialData() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("expected to stop after 3, got %d", n)
	}
}

func TestNumber_GenerateRandomData(t *testing.T) {
	for _, d := range []float64{1, 2, 3, 10} {
		s := g.Number().DivisibleBy(d)
		vals := collect(s.GenerateRandomData(skema.GenOpt{MaxAmount: 200}))
		if len(vals) != 200 {
			t.Fatalf("expected 200 samples, got %d", len(vals))
		}
		for _, v := range vals {
			if math.Mod(v.(float64), d) != 0 {
				t.Fatalf("sample %v not divisible by %v", v, d)
			}
		}
	}

	s := g.Number().Min(-5).Max(5)
	for v := range s.GenerateRandomData(skema.GenOpt{MaxAmount: 500}) {
		f := v.(float64)
		if f < -5 || f > 5 {
			t.Fatalf("sample %v out of range", f)
		}
	}
}

func TestNumber_GenerateRandomDataRoundsTowardZero(t *testing.T) {
	opt := func() skema.GenOpt { return skema.GenOpt{MaxAmount: 200, Rand: rand.New(rand.NewPCG(3, 4))} }

	// a positive non-multiple min is undershot
	below := 0
	for v := range g.Number().Min(0.5).Max(1.5).DivisibleBy(1).GenerateRandomData(opt()) {
		switch v.(float64) {
		case 0:
			below++
		case 1:
		default:
			t.Fatalf("unexpected sample %v", v)
		}
	}
	if below == 0 {
		t.Fatalf("expected samples rounded below min")
	}

	// negative samples are pulled up toward zero and stay in range
	for v := range g.Number().Min(-1.5).Max(-0.5).DivisibleBy(1).GenerateRandomData(opt()) {
		if f := v.(float64); f != -1 && f != 0 {
			t.Fatalf("unexpected sample %v", f)
		}
	}
}

func TestNumber_GenerateRandomDataSeeded(t *testing.T) {
	s := g.Number().Min(0).Max(100).Integer()
	a := collect(s.GenerateRandomData(skema.GenOpt{MaxAmount: 20, Rand: rand.New(rand.NewPCG(1, 2))}))
	b := collect(s.GenerateRandomData(skema.GenOpt{MaxAmount: 20, Rand: rand.New(rand.NewPCG(1, 2))}))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("seeded generation should be reproducible")
	}
}

type celsius float64

func TestNumber_ValidateCache(t *testing.T) {
	s := g.Number().Max(10)
	if s.CacheLen() != 0 {
		t.Fatalf("fresh schema should start with an empty cache")
	}
	s.Validate(11)
	s.Validate(11)
	s.Validate(math.NaN())
	s.Validate(math.NaN())
	s.Validate(0.0)
	s.Validate(math.Copysign(0, -1))
	if got := s.CacheLen(); got != 3 {
		t.Fatalf("expected 3 cached entries (11, NaN, 0), got %d", got)
	}
	// uncomparable inputs bypass the cache
	s.Validate([]int{1})
	if got := s.CacheLen(); got != 3 {
		t.Fatalf("slices must not be cached, got %d entries", got)
	}
	// NaN of a named float type shares one key, distinct from float64 NaN
	for range 100 {
		s.Validate(celsius(math.NaN()))
	}
	if got := s.CacheLen(); got != 4 {
		t.Fatalf("expected one entry for named NaN, got %d entries", got)
	}
	if got := s.Validate(celsius(math.NaN())).Error; got != `value is NaN, "not a number"` {
		t.Fatalf("unexpected named NaN result: %q", got)
	}
	// values holding a NaN never equal themselves and are not cached
	s.Validate(struct{ F float64 }{math.NaN()})
	if got := s.CacheLen(); got != 4 {
		t.Fatalf("NaN composites must not be cached, got %d entries", got)
	}
	// derived schemas get their own cache
	if d := s.Min(0); d.CacheLen() != 0 {
		t.Fatalf("derived schema inherited cache entries")
	}
	if got := s.Validate(math.NaN()).Error; got != `value is NaN, "not a number"` {
		t.Fatalf("cached NaN result is wrong: %q", got)
	}
}
