// Package s1 provides geometry on the unit circle, using angles in the
// canonical range (-π, π].
//
// The central type is [Interval], a closed, bounded interval whose endpoints
// live on a periodic coordinate. Because an interval may wrap through the
// discontinuity at ±π, it comes in four shapes — empty, full, an ordinary
// arc, and an inverted (wrapping) arc — and every operation handles all four.
// The type supports the usual set algebra ([Interval.Union],
// [Interval.Intersection], containment and intersection predicates), point
// operations ([Interval.AddPoint], [Interval.Project]), symmetric expansion
// and erosion ([Interval.Expanded]), a directed Hausdorff metric
// ([Interval.DirectedHausdorffDistance]), and tolerance-based comparison
// ([Interval.ApproxEquals]).
//
// All operations accept IEEE double rounding error as a design constraint
// and are written to remain numerically stable near the ±π seam; none of
// them require or provide arbitrary-precision exactness.
package s1
