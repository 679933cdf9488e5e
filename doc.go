// Package skema provides:
//
// - Immutable value schemas built with fluent, copy-on-write mutators
// - Value validation reporting the first violation as plain data
// - Structural subset checks between schemas (is every value of A legal in B?)
// - Declaration linting (Errors) for self-inconsistent constraints
// - Sequential and random sample generation over a schema's value space
//
// Design policy:
// - Keep the shared contract and the cross-cutting features in the root
//   package: optional presence checks, the subset dispatcher, generator
//   option cleaning, declaration helpers and the per-instance result cache.
// - Put the kind variants (Number, Boolean, String) under dsl/, messages under
//   i18n/, and the CLI under cmd/skema.
// - Failures are returned as data (ValidationResult, SubsetResult, []string),
//   never as panics. Error adapters exist for callers that prefer error values.
//
// Typical usage:
//
//	n := dsl.Number().Integer().Min(0).Max(10)
//	res := n.Validate(11)                   // res.Error == "number = 11 is bigger than required maximum = 10"
//	sub := n.Min(5).CheckSubsetOf(n)        // sub.IsSubset == true
//	for v := range n.GenerateRandomData(skema.GenOpt{MaxAmount: 5}) {
//		_ = v
//	}
//
// Null and undefined: a Go nil (or nil pointer, map, slice, ...) stands for
// null; the Undefined sentinel stands for an absent value. Optional schemas
// accept both.
package skema
