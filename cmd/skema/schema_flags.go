package main

import (
	"flag"
	"fmt"
	"slices"

	skema "github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

var (
	numberOnly = []string{"min", "max", "divisible", "integer", "positive"}
	stringOnly = []string{"min-length", "max-length"}
)

// schemaFlags describes one schema on the command line. prefix namespaces the
// flags so that subset can take a source and a target ("" and "target-").
type schemaFlags struct {
	prefix    string
	kind      string
	min       float64
	max       float64
	divisible float64
	integer   bool
	positive  bool
	minLength int
	maxLength int
	optional  bool
}

func newSchemaFlags(fs *flag.FlagSet, prefix string) *schemaFlags {
	f := &schemaFlags{prefix: prefix}
	fs.StringVar(&f.kind, prefix+"kind", "number", "schema kind: number|boolean|string")
	fs.Float64Var(&f.min, prefix+"min", 0, "number: minimum (inclusive)")
	fs.Float64Var(&f.max, prefix+"max", 0, "number: maximum (inclusive)")
	fs.Float64Var(&f.divisible, prefix+"divisible", 0, "number: divisor (0 disables)")
	fs.BoolVar(&f.integer, prefix+"integer", false, "number: only integers")
	fs.BoolVar(&f.positive, prefix+"positive", false, "number: minimum 0")
	fs.IntVar(&f.minLength, prefix+"min-length", 0, "string: minimum length in characters")
	fs.IntVar(&f.maxLength, prefix+"max-length", -1, "string: maximum length in characters (negative = unbounded)")
	fs.BoolVar(&f.optional, prefix+"optional", false, "accept null and undefined")
	return f
}

// build assembles the schema from the flags that were explicitly set on fs.
// Constraints are applied in a fixed order: integer, divisible, positive,
// min, max.
func (f *schemaFlags) build(fs *flag.FlagSet) (skema.Schema, error) {
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	has := func(name string) bool { return set[f.prefix+name] }

	reject := func(names []string) error {
		for _, n := range names {
			if has(n) {
				return fmt.Errorf("flag -%s%s does not apply to kind %s", f.prefix, n, f.kind)
			}
		}
		return nil
	}

	switch f.kind {
	case "number":
		if err := reject(stringOnly); err != nil {
			return nil, err
		}
		n := g.Number()
		if f.integer {
			n = n.Integer()
		}
		if has("divisible") {
			n = n.DivisibleBy(f.divisible)
		}
		if f.positive {
			n = n.Positive()
		}
		if has("min") {
			n = n.Min(f.min)
		}
		if has("max") {
			n = n.Max(f.max)
		}
		if f.optional {
			n = n.Optional()
		}
		return n, nil
	case "boolean":
		if err := reject(slices.Concat(numberOnly, stringOnly)); err != nil {
			return nil, err
		}
		b := g.Boolean()
		if f.optional {
			b = b.Optional()
		}
		return b, nil
	case "string":
		if err := reject(numberOnly); err != nil {
			return nil, err
		}
		s := g.String()
		if has("min-length") {
			s = s.MinLength(f.minLength)
		}
		if has("max-length") {
			s = s.MaxLength(f.maxLength)
		}
		if f.optional {
			s = s.Optional()
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown kind %q (want number, boolean or string)", f.kind)
}
