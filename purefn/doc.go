// Package purefn provides memoization utilities for pure functions.
//
// The centerpiece is the Tableize family of functions, which memoize pure function
// calls by their input values. These functions assume purity—not just determinism,
// but referential transparency.
//
// Features:
//   - TableizeI1O1 to TableizeI4O2: Typed, generic memoizers for common arities.
//   - Bounded memo Table with two rotating generations of chained hash tables.
//   - Arguments are keyed by their text (String for fmt.Stringer, %#v otherwise),
//     hashed with xxHash; the stored text is compared on every hit.
//
// See tableize_test.go and tableize_bench_test.go for usage and benchmarks.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package purefn
