// Package predicate implements the two geometric predicates the
// Guibas-Stolfi triangulator depends on for topological correctness:
// Orient2D (orientation of an ordered triple) and InCircle (whether a point
// lies inside the circle through three others).
//
// Both predicates use an adaptive scheme: a fast float64 estimate is
// computed along with a conservative error bound (after Shewchuk, "Adaptive
// Precision Floating-Point Arithmetic and Fast Robust Geometric
// Predicates"); when the estimate's magnitude does not clear that bound,
// the exact sign is instead obtained from an arbitrary-precision
// recomputation. Ordinary inputs take the fast path; only near-degenerate
// configurations (colinear triples, cocircular quadruples, and points
// within rounding distance of those) pay for the exact fallback.
//
// Coordinates follow the same top-left-origin, y-downward convention as
// package point: a negative Orient2D indicates the triple is ordered
// counter-clockwise under that frame.
package predicate
