package assess

import (
	"math"

	"github.com/san-kum/cracklab/internal/fatigue"
	"github.com/san-kum/cracklab/internal/fracture"
	"github.com/san-kum/cracklab/internal/geometry"
)

// ligamentWarning flags the known modeling limitation for rotor-disk
// geometries: the ligament width is derived from the crack orientation
// alone, not from the crack's radial position on the disk.
const ligamentWarning = "ligament width is orientation-based and does not account for crack location radius; treat rotor-disk results as approximate"

// Evaluator runs assessments with a fixed integrator and marginal-band
// configuration. It is stateless across calls; independent evaluations
// may run concurrently on one Evaluator.
type Evaluator struct {
	Integrator           *fatigue.Integrator
	MarginalSFRatio      float64
	MarginalLifeFraction float64
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		Integrator:           fatigue.NewIntegrator(),
		MarginalSFRatio:      DefaultMarginalSFRatio,
		MarginalLifeFraction: DefaultMarginalLifeFraction,
	}
}

// Evaluate is the one logical operation of the core: validated spec and
// material in, one coherent SafetyAssessment out. Any error aborts the
// pipeline with no partial result.
func (e *Evaluator) Evaluate(spec *fracture.CrackSpecification, mat *fracture.MaterialAndLoadSpec) (*SafetyAssessment, error) {
	if err := mat.Validate(); err != nil {
		return nil, err
	}

	model, err := geometry.ModelFor(spec.Type())
	if err != nil {
		return nil, err
	}

	fr, err := evaluateFracture(model, spec, mat)
	if err != nil {
		return nil, err
	}

	ft, err := e.Integrator.Grow(model, spec, mat)
	if err != nil {
		return nil, err
	}

	status, explanation := e.resolve(fr, ft, mat)

	out := &SafetyAssessment{
		Status:      status,
		Fracture:    fr,
		Fatigue:     ft,
		Explanation: explanation,
	}
	if spec.Orientation() == fracture.Radial && spec.LocationRadius() > 0 {
		out.Warnings = append(out.Warnings, ligamentWarning)
	}
	return out, nil
}

// Evaluate runs one assessment with default settings.
func Evaluate(spec *fracture.CrackSpecification, mat *fracture.MaterialAndLoadSpec) (*SafetyAssessment, error) {
	return NewEvaluator().Evaluate(spec, mat)
}

func evaluateFracture(model geometry.Model, spec *fracture.CrackSpecification, mat *fracture.MaterialAndLoadSpec) (FractureResult, error) {
	y, err := model.Factor(spec)
	if err != nil {
		return FractureResult{}, err
	}

	kI := geometry.StressIntensity(y, mat.AppliedStress, spec.A())
	if math.IsNaN(kI) || math.IsInf(kI, 0) || kI < 0 {
		return FractureResult{}, &fracture.ModelResultError{Quantity: "K_I", Value: kI}
	}

	// Validated inputs keep K_I strictly positive; the infinity here is
	// the one legitimate sentinel, for the degenerate unloaded case.
	sf := math.Inf(1)
	if kI > 0 {
		sf = mat.FractureToughness / kI
	}

	return FractureResult{Y: y, StressIntensity: kI, SafetyFactor: sf}, nil
}
