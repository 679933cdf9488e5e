// Package dsl provides the schema kinds of skema and their fluent builders.
//
// Overview
//   - Entry points: Number(), Boolean() and String() return the unconstrained
//     schema of each kind. They are shared immutable values.
//   - Builders: every mutator (Max/Min/DivisibleBy/Integer/Positive,
//     MinLength/MaxLength/Length/NonEmpty, Optional) returns a new schema and
//     leaves the receiver untouched. Setting the same field twice keeps the
//     last value.
//   - Validation: Validate reports the first violation as a
//     skema.ValidationResult; results are memoized per schema instance.
//   - Containment: CheckSubsetOf runs the generic checks of skema.CheckSubset
//     and then compares kind-specific constraints.
//   - Declarations: Errors lints the schema's own constraints (for example
//     min > max) without refusing to use it.
//   - Generation: GenerateSequentialData and GenerateRandomData return
//     restartable iter.Seq values sized by skema.GenOpt.
//
// File layout (roles)
//   - primitives.go: shared helpers and compile-time interface checks.
//   - number.go: NumberSchema (range, divisibility, numeric generators).
//   - boolean.go: BooleanSchema.
//   - string.go: StringSchema (rune-length bounds, string generators).
//
// Example (quickstart)
//
//	package main
//
//	import (
//	    "fmt"
//
//	    g "github.com/reoring/skema/dsl"
//	)
//
//	func main() {
//	    age := g.Number().Integer().Min(0).Max(150)
//	    fmt.Println(age.Validate(200).Error)
//	    // number = 200 is bigger than required maximum = 150
//
//	    adult := age.Min(18)
//	    fmt.Println(adult.CheckSubsetOf(age).IsSubset) // true
//
//	    for v := range age.GenerateSequentialData() {
//	        fmt.Println(v)
//	    }
//	}
package dsl
