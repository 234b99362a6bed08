package s1

import (
	"fmt"
	"math"
)

// dblEpsilon is the difference between 1.0 and the next representable float64.
const dblEpsilon = 2.220446049250313e-16

// Interval represents a closed interval on the unit circle, with endpoints
// given as angles in the range [-π, π]. Because the circle is periodic, the
// interval can take one of four shapes: an ordinary arc (Lo ≤ Hi), an
// "inverted" arc that wraps through ±π (Lo > Hi), the full circle, and the
// empty interval. Fullness and emptiness are encoded by sentinel endpoint
// pairs: [-π, π] is full and [π, -π] is empty.
//
// The endpoint -π is never used internally; it is normalized to π on
// construction, since both denote the same point on the circle. Use the
// provided constructors rather than composite literals unless the endpoints
// are already known to be valid.
type Interval struct {
	Lo, Hi float64
}

// EmptyInterval returns the interval containing no points.
func EmptyInterval() Interval {
	return Interval{Lo: math.Pi, Hi: -math.Pi}
}

// FullInterval returns the interval containing all points on the circle.
func FullInterval() Interval {
	return Interval{Lo: -math.Pi, Hi: math.Pi}
}

// NewIntervalFromEndpoints constructs an interval from its endpoints, both
// of which must be in [-π, π]. An endpoint of -π is converted to π, except
// when that would change [-π, π] (full) or [π, -π] (empty), whose sentinel
// endpoints are kept as is.
func NewIntervalFromEndpoints(lo, hi float64) Interval {
	i := Interval{Lo: lo, Hi: hi}
	if lo == -math.Pi && hi != math.Pi {
		i.Lo = math.Pi
	}
	if hi == -math.Pi && lo != math.Pi {
		i.Hi = math.Pi
	}
	return i
}

// NewIntervalFromPoint returns the zero-length interval containing the
// single point p, which must be in [-π, π].
func NewIntervalFromPoint(p float64) Interval {
	if p == -math.Pi {
		p = math.Pi
	}
	return Interval{Lo: p, Hi: p}
}

// NewIntervalFromPointPair returns the minimal interval containing the two
// points p1 and p2, both of which must be in [-π, π]. Of the two arcs
// connecting the points, the shorter one is chosen; callers that need the
// longer arc must take the Complement of the result.
func NewIntervalFromPointPair(p1, p2 float64) Interval {
	if p1 == -math.Pi {
		p1 = math.Pi
	}
	if p2 == -math.Pi {
		p2 = math.Pi
	}
	if positiveDistance(p1, p2) <= math.Pi {
		return Interval{Lo: p1, Hi: p2}
	}
	return Interval{Lo: p2, Hi: p1}
}

// IsValid reports whether both endpoints are in [-π, π] and -π appears only
// as part of the full or empty sentinel pairs.
func (i Interval) IsValid() bool {
	return math.Abs(i.Lo) <= math.Pi && math.Abs(i.Hi) <= math.Pi &&
		!(i.Lo == -math.Pi && i.Hi != math.Pi) &&
		!(i.Hi == -math.Pi && i.Lo != math.Pi)
}

// IsEmpty reports whether the interval contains no points.
func (i Interval) IsEmpty() bool {
	return i.Lo-i.Hi == 2*math.Pi
}

// IsFull reports whether the interval contains all points on the circle.
func (i Interval) IsFull() bool {
	return i.Hi-i.Lo == 2*math.Pi
}

// IsInverted reports whether the interval wraps around through ±π. The empty
// interval is considered inverted.
func (i Interval) IsInverted() bool {
	return i.Lo > i.Hi
}

// Length returns the length of the interval, in [0, 2π]. The length of the
// empty interval is -1, distinguishing it from a zero-length singleton.
func (i Interval) Length() float64 {
	length := i.Hi - i.Lo
	if length >= 0 {
		return length
	}
	length += 2 * math.Pi
	if length > 0 {
		return length
	}
	return -1
}

// Center returns the midpoint of the interval, in (-π, π]. The result is
// arbitrary for the full and empty intervals.
func (i Interval) Center() float64 {
	center := 0.5 * (i.Lo + i.Hi)
	if !i.IsInverted() {
		return center
	}
	// The midpoint of an inverted interval lies in its complement; shift it
	// by half a turn back into the interval.
	if center <= 0 {
		return center + math.Pi
	}
	return center - math.Pi
}

// Complement returns the complement of the interior of the interval. An
// interval and its complement share their boundary but not their interior.
// The complement of a singleton is the full circle.
func (i Interval) Complement() Interval {
	if i.Lo == i.Hi {
		return FullInterval() // Singleton.
	}
	return Interval{Lo: i.Hi, Hi: i.Lo} // Handles empty and full.
}

// ComplementCenter returns the midpoint of the complement of the interval.
// For a singleton the complement minus its boundary is the whole circle, and
// the antipodal point is returned.
func (i Interval) ComplementCenter() float64 {
	if i.Lo != i.Hi {
		return i.Complement().Center()
	}
	if i.Hi <= 0 {
		return i.Hi + math.Pi
	}
	return i.Hi - math.Pi
}

// fastContains reports whether the interval contains p, assuming p has
// already been normalized so that p != -π.
func (i Interval) fastContains(p float64) bool {
	if i.IsInverted() {
		return (p >= i.Lo || p <= i.Hi) && !i.IsEmpty()
	}
	return p >= i.Lo && p <= i.Hi
}

// Contains reports whether the interval contains the point p, which must be
// in [-π, π].
func (i Interval) Contains(p float64) bool {
	// Works for empty, full, and singleton intervals.
	if p == -math.Pi {
		p = math.Pi
	}
	return i.fastContains(p)
}

// InteriorContains reports whether the interior of the interval contains the
// point p, which must be in [-π, π]. The interior of the full interval
// contains every point.
func (i Interval) InteriorContains(p float64) bool {
	// Works for empty, full, and singleton intervals.
	if p == -math.Pi {
		p = math.Pi
	}
	if i.IsInverted() {
		return p > i.Lo || p < i.Hi
	}
	return (p > i.Lo && p < i.Hi) || i.IsFull()
}

// ContainsInterval reports whether the interval contains every point of o.
func (i Interval) ContainsInterval(o Interval) bool {
	// The structure of these tests parallels the point form of Contains.
	if i.IsInverted() {
		if o.IsInverted() {
			return o.Lo >= i.Lo && o.Hi <= i.Hi
		}
		return (o.Lo >= i.Lo || o.Hi <= i.Hi) && !i.IsEmpty()
	}
	if o.IsInverted() {
		return i.IsFull() || o.IsEmpty()
	}
	return o.Lo >= i.Lo && o.Hi <= i.Hi
}

// InteriorContainsInterval reports whether the interior of the interval
// contains every point of o, including o's boundary.
func (i Interval) InteriorContainsInterval(o Interval) bool {
	if i.IsInverted() {
		if !o.IsInverted() {
			return o.Lo > i.Lo || o.Hi < i.Hi
		}
		return (o.Lo > i.Lo && o.Hi < i.Hi) || o.IsEmpty()
	}
	if o.IsInverted() {
		return i.IsFull() || o.IsEmpty()
	}
	return (o.Lo > i.Lo && o.Hi < i.Hi) || i.IsFull()
}

// Intersects reports whether the two intervals share any points.
func (i Interval) Intersects(o Interval) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return false
	}
	if i.IsInverted() {
		// Every non-empty inverted interval contains ±π.
		return o.IsInverted() || o.Lo <= i.Hi || o.Hi >= i.Lo
	}
	if o.IsInverted() {
		return o.Lo <= i.Hi || o.Hi >= i.Lo
	}
	return o.Lo <= i.Hi && o.Hi >= i.Lo
}

// InteriorIntersects reports whether the interior of the interval shares any
// points with o, including o's boundary.
func (i Interval) InteriorIntersects(o Interval) bool {
	if i.IsEmpty() || o.IsEmpty() || i.Lo == i.Hi {
		return false
	}
	if i.IsInverted() {
		return o.IsInverted() || o.Lo < i.Hi || o.Hi > i.Lo
	}
	if o.IsInverted() {
		return o.Lo < i.Hi || o.Hi > i.Lo
	}
	return (o.Lo < i.Hi && o.Hi > i.Lo) || i.IsFull()
}

// Union returns the smallest interval containing both intervals. For
// disjoint inputs the shorter of the two connecting gaps is bridged.
func (i Interval) Union(o Interval) Interval {
	// A full o is handled correctly by each code path below, depending on
	// whether this interval is inverted, non-inverted but containing π, or
	// neither.
	if o.IsEmpty() {
		return i
	}
	if i.fastContains(o.Lo) {
		if i.fastContains(o.Hi) {
			// Either i contains o, or the union of the two intervals is the
			// full circle.
			if i.ContainsInterval(o) {
				return i
			}
			return FullInterval()
		}
		return Interval{Lo: i.Lo, Hi: o.Hi}
	}
	if i.fastContains(o.Hi) {
		return Interval{Lo: o.Lo, Hi: i.Hi}
	}

	// This interval contains neither endpoint of o, so either o contains all
	// of this interval, or the two intervals are disjoint.
	if i.IsEmpty() || o.fastContains(i.Lo) {
		return o
	}

	// Bridge whichever pair of endpoints is closer together.
	dlo := positiveDistance(o.Hi, i.Lo)
	dhi := positiveDistance(i.Hi, o.Lo)
	if dlo < dhi {
		return Interval{Lo: o.Lo, Hi: i.Hi}
	}
	return Interval{Lo: i.Lo, Hi: o.Hi}
}

// Intersection returns the smallest interval containing the intersection of
// the two intervals. Since the intersection can consist of two disjoint
// arcs, in that case the shorter of the two original intervals is returned.
func (i Interval) Intersection(o Interval) Interval {
	// As in Union, a full o is handled correctly by each code path below.
	if o.IsEmpty() {
		return EmptyInterval()
	}
	if i.fastContains(o.Lo) {
		if i.fastContains(o.Hi) {
			// Either i contains o, or the region of intersection consists of
			// two disjoint arcs. In either case we want the shorter of the
			// two original intervals.
			if o.Length() < i.Length() {
				return o
			}
			return i
		}
		return Interval{Lo: o.Lo, Hi: i.Hi}
	}
	if i.fastContains(o.Hi) {
		return Interval{Lo: i.Lo, Hi: o.Hi}
	}

	// This interval contains neither endpoint of o, so either o contains all
	// of this interval (including when this interval is empty), or the two
	// intervals are disjoint.
	if o.fastContains(i.Lo) {
		return i
	}
	return EmptyInterval()
}

// AddPoint expands the interval in place to the smallest interval containing
// both its original points and p, which must be in [-π, π]. If p is already
// contained the interval is unchanged. Adding a point can never turn a
// non-full interval into a full one.
func (i *Interval) AddPoint(p float64) {
	if p == -math.Pi {
		p = math.Pi
	}
	if i.fastContains(p) {
		return
	}
	if i.IsEmpty() {
		i.Lo = p
		i.Hi = p
		return
	}
	// Extend whichever endpoint is closer to p.
	dlo := positiveDistance(p, i.Lo)
	dhi := positiveDistance(i.Hi, p)
	if dlo < dhi {
		i.Lo = p
	} else {
		i.Hi = p
	}
}

// Project returns the closest point in the interval to the point p, which
// must be in [-π, π]. The interval must be non-empty.
func (i Interval) Project(p float64) float64 {
	if p == -math.Pi {
		p = math.Pi
	}
	if i.fastContains(p) {
		return p
	}
	// Return whichever endpoint is closer to p.
	dlo := positiveDistance(p, i.Lo)
	dhi := positiveDistance(i.Hi, p)
	if dlo < dhi {
		return i.Lo
	}
	return i.Hi
}

// Expanded returns an interval that has been expanded on each side by
// margin. If margin is negative, the interval is shrunk instead, and the
// boundary points move towards the center. An interval whose expanded length
// would reach 2π becomes the full interval, and one whose shrunk length
// would reach zero becomes the empty interval; either test allows for a
// one-bit rounding error when computing each endpoint.
func (i Interval) Expanded(margin float64) Interval {
	if margin >= 0 {
		if i.IsEmpty() {
			return i
		}
		if i.Length()+2*margin+2*dblEpsilon >= 2*math.Pi {
			return FullInterval()
		}
	} else {
		if i.IsFull() {
			return i
		}
		if i.Length()+2*margin-2*dblEpsilon <= 0 {
			return EmptyInterval()
		}
	}
	result := Interval{
		Lo: math.Remainder(i.Lo-margin, 2*math.Pi),
		Hi: math.Remainder(i.Hi+margin, 2*math.Pi),
	}
	if result.Lo <= -math.Pi {
		result.Lo = math.Pi
	}
	return result
}

// DirectedHausdorffDistance returns the Hausdorff distance from the interval
// to o: the supremum, over points p of this interval, of the distance from p
// to the closest point of o. It is 0 whenever o contains this interval, and
// π (the maximum possible distance on the circle) when o is empty and this
// interval is not.
func (i Interval) DirectedHausdorffDistance(o Interval) float64 {
	if o.ContainsInterval(i) {
		return 0 // Includes the case where this interval is empty.
	}
	if o.IsEmpty() {
		return math.Pi
	}
	oc := o.ComplementCenter()
	if i.Contains(oc) {
		return positiveDistance(o.Hi, oc)
	}
	// The Hausdorff distance is realized by either the two Hi endpoints or
	// the two Lo endpoints, whichever pair is farther apart.
	var hiHi, loLo float64
	if (Interval{Lo: o.Hi, Hi: oc}).Contains(i.Hi) {
		hiHi = positiveDistance(o.Hi, i.Hi)
	}
	if (Interval{Lo: oc, Hi: o.Lo}).Contains(i.Lo) {
		loLo = positiveDistance(i.Lo, o.Lo)
	}
	return max(hiHi, loLo)
}

// ApproxEquals reports whether the two intervals are equal to within
// maxError. The empty and full intervals need special handling because their
// endpoint positions are arbitrary: an interval is approximately empty if
// its length is within 2*maxError of zero, and approximately full if its
// length is within 2*maxError of 2π.
func (i Interval) ApproxEquals(o Interval, maxError float64) bool {
	if i.IsEmpty() {
		return o.Length() <= 2*maxError
	}
	if o.IsEmpty() {
		return i.Length() <= 2*maxError
	}
	if i.IsFull() {
		return o.Length() >= 2*(math.Pi-maxError)
	}
	if o.IsFull() {
		return i.Length() >= 2*(math.Pi-maxError)
	}
	// The length test below verifies that moving the endpoints does not
	// invert the interval, e.g. [-1e20, 1e20] vs. [1e20, -1e20].
	return math.Abs(math.Remainder(o.Lo-i.Lo, 2*math.Pi)) <= maxError &&
		math.Abs(math.Remainder(o.Hi-i.Hi, 2*math.Pi)) <= maxError &&
		math.Abs(i.Length()-o.Length()) <= 2*maxError
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g, %g]", i.Lo, i.Hi)
}

// positiveDistance computes the distance traveled counter-clockwise from a
// to b, in [0, 2π). It is equivalent to remainder(b-a-π, 2π)+π, except that
// it does not lose precision for very small positive distances: if b == π
// and a == -π+eps, the result is approximately 2π rather than zero.
func positiveDistance(a, b float64) float64 {
	d := b - a
	if d >= 0 {
		return d
	}
	return (b + math.Pi) - (a - math.Pi)
}
