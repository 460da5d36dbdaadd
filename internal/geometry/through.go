package geometry

import (
	"math"

	"github.com/san-kum/cracklab/internal/fracture"
)

// ThroughCrack models a centre through-crack in a finite-width section
// using the secant width correction:
//
//	Y = sqrt(sec(π·a / 2W))
//
// where a is the half-length. Y → 1 for a << W and diverges as the
// crack consumes the full width, so the window is the open interval
// 0 < a/W < 1.
type ThroughCrack struct{}

func (*ThroughCrack) Type() fracture.CrackType { return fracture.Through }

func (*ThroughCrack) Window() fracture.DomainWindow {
	return fracture.DomainFor(fracture.Through)
}

func (*ThroughCrack) Factor(spec *fracture.CrackSpecification) (float64, error) {
	arg := math.Pi * spec.RatioAW() / 2.0
	return checkFactor(math.Sqrt(1.0 / math.Cos(arg)))
}
