package geometry

import (
	"math"

	"github.com/san-kum/cracklab/internal/fracture"
)

// CornerCrack models a quarter-elliptical corner flaw with a calibrated
// fit combining the two free surfaces:
//
//	Y = (1.2 − 0.1·a/c) / sqrt(Q),  Q = 1 + 1.464·(a/c)^1.65
//
// Calibrated for 0.2 <= a/c <= 1 and a/W <= 0.5.
type CornerCrack struct{}

func (*CornerCrack) Type() fracture.CrackType { return fracture.Corner }

func (*CornerCrack) Window() fracture.DomainWindow {
	return fracture.DomainFor(fracture.Corner)
}

func (*CornerCrack) Factor(spec *fracture.CrackSpecification) (float64, error) {
	ac := spec.AspectRatio()
	y := (1.2 - 0.1*ac) / math.Sqrt(shapeFactorQ(ac))
	return checkFactor(y)
}
