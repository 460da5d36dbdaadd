package fracture

import "fmt"

// DomainWindow is the calibrated validity region for one crack type.
// Ratios at the boundary of an open interval are rejected. The windows
// are data owned here so the gate and the Y-factor models cannot drift
// apart: both read the same table.
type DomainWindow struct {
	MaxAW       float64 // upper bound on a/W, exclusive unless AWInclusive
	AWInclusive bool
	NeedsAspect bool    // type carries a semi-width c
	MinAspect   float64 // bounds on a/c, inclusive, when NeedsAspect
	MaxAspect   float64
}

var domains = map[CrackType]DomainWindow{
	Edge:       {MaxAW: 0.60},
	DoubleEdge: {MaxAW: 0.70},
	Through:    {MaxAW: 1.0},
	EllipticalSurface: {
		MaxAW: 0.50, AWInclusive: true,
		NeedsAspect: true, MinAspect: 0.2, MaxAspect: 1.0,
	},
	Corner: {
		MaxAW: 0.50, AWInclusive: true,
		NeedsAspect: true, MinAspect: 0.2, MaxAspect: 1.0,
	},
}

// DomainFor returns the validity window for a crack type.
func DomainFor(t CrackType) DomainWindow {
	return domains[t]
}

// Check evaluates the window against a spec's normalized ratios.
func (d DomainWindow) Check(spec *CrackSpecification) error {
	aw := spec.RatioAW()
	if aw <= 0 {
		return &GeometryError{CrackType: spec.Type(), Field: "a/W", Value: aw, Bound: "a/W > 0"}
	}
	if d.AWInclusive {
		if aw > d.MaxAW {
			return &GeometryError{
				CrackType: spec.Type(), Field: "a/W", Value: aw,
				Bound: fmt.Sprintf("a/W <= %.2g", d.MaxAW),
			}
		}
	} else if aw >= d.MaxAW {
		return &GeometryError{
			CrackType: spec.Type(), Field: "a/W", Value: aw,
			Bound: fmt.Sprintf("a/W < %.2g", d.MaxAW),
		}
	}

	if d.NeedsAspect {
		ac := spec.AspectRatio()
		if ac < d.MinAspect || ac > d.MaxAspect {
			return &GeometryError{
				CrackType: spec.Type(), Field: "a/c", Value: ac,
				Bound: fmt.Sprintf("%.2g <= a/c <= %.2g", d.MinAspect, d.MaxAspect),
			}
		}
	}
	return nil
}

// Ceiling returns the largest crack size (mm) the window models for a
// given section width. Growth integration terminates here when the
// toughness is never reached; the value is an integration bound, not a
// physical critical size, and must never be reported as one.
func (d DomainWindow) Ceiling(w float64) float64 {
	const margin = 1e-3 // stay strictly inside open windows
	if d.AWInclusive {
		return d.MaxAW * w
	}
	return (d.MaxAW - margin) * w
}
