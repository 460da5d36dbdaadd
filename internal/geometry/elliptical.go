package geometry

import (
	"math"

	"github.com/san-kum/cracklab/internal/fracture"
)

// EllipticalSurfaceCrack models a semi-elliptical surface flaw at its
// deepest point with the Newman–Raju front-face factor:
//
//	Y = (1.13 − 0.09·a/c) / sqrt(Q),  Q = 1 + 1.464·(a/c)^1.65
//
// Calibrated for 0.2 <= a/c <= 1 and a/W <= 0.5; outside that window
// the fit loses its back-face correction accuracy.
type EllipticalSurfaceCrack struct{}

func (*EllipticalSurfaceCrack) Type() fracture.CrackType { return fracture.EllipticalSurface }

func (*EllipticalSurfaceCrack) Window() fracture.DomainWindow {
	return fracture.DomainFor(fracture.EllipticalSurface)
}

func (*EllipticalSurfaceCrack) Factor(spec *fracture.CrackSpecification) (float64, error) {
	ac := spec.AspectRatio()
	y := (1.13 - 0.09*ac) / math.Sqrt(shapeFactorQ(ac))
	return checkFactor(y)
}
