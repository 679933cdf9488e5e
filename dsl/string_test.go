package dsl_test

import (
	"encoding/json"
	"math"
	"reflect"
	"slices"
	"testing"
	"unicode/utf8"

	skema "github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

type userName string

func TestString_Validate(t *testing.T) {
	s := g.String().MinLength(2).MaxLength(4)

	cases := []struct {
		v    any
		want string
	}{
		{nil, "value = null is not a string"},
		{skema.Undefined, "value = undefined is not a string"},
		{3, "value of type number is not a string"},
		{"a", "string length = 1 is smaller than required minimum length = 2"},
		{"abcde", "string length = 5 is bigger than required maximum length = 4"},
		{"ab", ""},
		{"日本語", ""}, // runes, not bytes
		{userName("abc"), ""},
		{userName("a"), "string length = 1 is smaller than required minimum length = 2"},
		{json.Number("12"), "value of type number is not a string"},
	}
	for _, tc := range cases {
		if got := s.Validate(tc.v).Error; got != tc.want {
			t.Fatalf("Validate(%#v): want %q, got %q", tc.v, tc.want, got)
		}
	}
}

func TestString_Builders(t *testing.T) {
	if !reflect.DeepEqual(g.String().Length(3).Info(), g.String().MinLength(3).MaxLength(3).Info()) {
		t.Fatalf("Length(n) should pin both bounds")
	}
	if got := g.String().NonEmpty().Validate("").Error; got != "string length = 0 is smaller than required minimum length = 1" {
		t.Fatalf("unexpected: %q", got)
	}
	info := g.String().Info()
	if info.Constraints["maxLength"] != math.Inf(1) || info.Constraints["minLength"] != 0.0 {
		t.Fatalf("unexpected default info: %#v", info)
	}
	if !g.String().MaxLength(3).MaxLength(-1).Validate("long enough").OK() {
		t.Fatalf("negative max length should remove the bound")
	}
}

func TestString_Errors(t *testing.T) {
	errs := g.String().MinLength(-1).Errors()
	if !slices.Equal(errs, []string{"minimum length = -1 is negative"}) {
		t.Fatalf("unexpected errors: %v", errs)
	}
	errs = g.String().MinLength(5).MaxLength(2).Errors()
	if !slices.Equal(errs, []string{"required minimum length = 5 is greater than required maximum length = 2"}) {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestString_CheckSubsetOf(t *testing.T) {
	cases := []struct {
		name   string
		src    g.StringSchema
		target any
		want   skema.SubsetResult
	}{
		{"reflexive", g.String().Length(2), g.String().Length(2), skema.SubsetResult{IsSubset: true}},
		{"narrower", g.String().MinLength(2).MaxLength(3), g.String().MaxLength(5), skema.SubsetResult{IsSubset: true}},
		{"unbounded source", g.String(), g.String().MaxLength(5),
			skema.SubsetResult{Reason: "target maximum length = 5 is smaller than source value = Infinity"}},
		{"min too small", g.String().MinLength(1), g.String().MinLength(2),
			skema.SubsetResult{Reason: "target minimum length = 2 is bigger than source value = 1"}},
		{"other kind", g.String(), g.Number(), skema.SubsetResult{Reason: "StringSchema cannot be a subset of NumberSchema"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.src.CheckSubsetOf(tc.target); got != tc.want {
				t.Fatalf("want %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestString_GenerateSequentialData(t *testing.T) {
	got := collect(g.String().MinLength(1).MaxLength(3).GenerateSequentialData())
	if !reflect.DeepEqual(got, []any{"a", "bb", "ccc"}) {
		t.Fatalf("unexpected sequence: %v", got)
	}
	if got := collect(g.String().GenerateSequentialData(skema.GenOpt{MaxAmount: 3})); !reflect.DeepEqual(got, []any{"", "b", "cc"}) {
		t.Fatalf("unexpected sequence: %v", got)
	}
}

func TestString_GenerateRandomData(t *testing.T) {
	s := g.String().MinLength(2).MaxLength(6)
	vals := collect(s.GenerateRandomData(skema.GenOpt{MaxAmount: 100}))
	if len(vals) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(vals))
	}
	for _, v := range vals {
		if res := s.Validate(v); !res.OK() {
			t.Fatalf("sample %q invalid: %s", v, res.Error)
		}
	}
	for v := range g.String().GenerateRandomData(skema.GenOpt{MaxAmount: 50}) {
		if n := utf8.RuneCountInString(v.(string)); n > 32 {
			t.Fatalf("unbounded sample too long: %d", n)
		}
	}
	if vals := collect(g.String().MinLength(5).MaxLength(1).GenerateRandomData()); len(vals) != 0 {
		t.Fatalf("inconsistent bounds should yield nothing, got %d", len(vals))
	}
}
