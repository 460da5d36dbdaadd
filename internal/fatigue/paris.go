package fatigue

import (
	"math"

	"github.com/san-kum/cracklab/internal/fracture"
	"github.com/san-kum/cracklab/internal/geometry"
)

const (
	DefaultMaxSteps          = 200000
	DefaultRelStep           = 0.005
	DefaultInspectionDivisor = 3.0
)

// GrowthSample is one point along the integrated growth path.
type GrowthSample struct {
	Cycles float64 `json:"cycles"`  // accumulated cycles N
	A      float64 `json:"a_mm"`    // crack size, mm
	K      float64 `json:"delta_k"` // stress intensity range, MPa·√m
}

// Result is the outcome of a growth integration.
type Result struct {
	// CriticalCrackReached is true when a K_IC crossing exists within
	// the modeled ligament (including a crack already at critical size).
	CriticalCrackReached bool `json:"critical_crack_reached"`

	// CriticalCrackSize is the solved a_c in mm. Meaningful only when
	// CriticalCrackReached is true.
	CriticalCrackSize float64 `json:"critical_crack_size_mm,omitempty"`

	// CyclesToFailure is finite when a crossing exists, the no-crossing
	// sentinel otherwise.
	CyclesToFailure fracture.CycleCount `json:"cycles_to_failure"`

	// LifeFractionUsed is design life over cycles to failure: 0 for the
	// no-crossing case, +Inf for a crack already at critical size.
	LifeFractionUsed fracture.LifeFraction `json:"life_fraction_used"`

	// InspectionInterval is CyclesToFailure reduced by the inspection
	// divisor, carrying the same sentinel in the no-crossing case.
	InspectionInterval fracture.CycleCount `json:"inspection_interval"`

	// History samples the growth path for plotting and reports.
	History []GrowthSample `json:"-"`
}

// Integrator integrates da/dN = C·(ΔK)^m with adaptive crack-length
// steps. The zero value is unusable; construct with NewIntegrator.
type Integrator struct {
	// MaxSteps bounds the integration so pathological inputs fail fast
	// instead of looping.
	MaxSteps int

	// RelStep is the crack-length increment per step as a fraction of
	// the current size.
	RelStep float64

	// InspectionDivisor converts cycles to failure into a periodic
	// inspection interval.
	InspectionDivisor float64
}

func NewIntegrator() *Integrator {
	return &Integrator{
		MaxSteps:          DefaultMaxSteps,
		RelStep:           DefaultRelStep,
		InspectionDivisor: DefaultInspectionDivisor,
	}
}

// Grow integrates crack growth for a validated spec and material. The
// caller is expected to have run MaterialAndLoadSpec.Validate.
func (in *Integrator) Grow(model geometry.Model, spec *fracture.CrackSpecification, mat *fracture.MaterialAndLoadSpec) (*Result, error) {
	a0 := spec.A()
	ceiling := model.Window().Ceiling(spec.W())

	aCrit, found, err := CriticalSize(model, spec, mat)
	if err != nil {
		return nil, err
	}

	if !found {
		// K_IC is never reached inside the calibrated window. The
		// ceiling terminates the integration but is not a critical
		// size; the result carries explicit sentinels, never zeros.
		history, _, err := in.integrate(model, spec, mat, a0, ceiling)
		if err != nil {
			return nil, err
		}
		return &Result{
			CriticalCrackReached: false,
			CyclesToFailure:      fracture.NoCrossing(),
			LifeFractionUsed:     0,
			InspectionInterval:   fracture.NoCrossing(),
			History:              history,
		}, nil
	}

	if a0 >= aCrit {
		// Pre-existing crack at or beyond critical size.
		return &Result{
			CriticalCrackReached: true,
			CriticalCrackSize:    aCrit,
			CyclesToFailure:      fracture.FiniteCycles(0),
			LifeFractionUsed:     fracture.LifeFraction(math.Inf(1)),
			InspectionInterval:   fracture.FiniteCycles(0),
			History:              nil,
		}, nil
	}

	history, cycles, err := in.integrate(model, spec, mat, a0, aCrit)
	if err != nil {
		return nil, err
	}
	return &Result{
		CriticalCrackReached: true,
		CriticalCrackSize:    aCrit,
		CyclesToFailure:      fracture.FiniteCycles(cycles),
		LifeFractionUsed:     fracture.LifeFraction(mat.DesignLifeCycles / cycles),
		InspectionInterval:   fracture.FiniteCycles(cycles / in.InspectionDivisor),
		History:              history,
	}, nil
}

// integrate advances the crack from one size to another with midpoint
// sampling of the growth rate, returning the sampled path and the
// accumulated cycle count.
func (in *Integrator) integrate(model geometry.Model, spec *fracture.CrackSpecification, mat *fracture.MaterialAndLoadSpec, from, to float64) ([]GrowthSample, float64, error) {
	a := from
	cycles := 0.0

	k0, err := stressIntensityAt(model, spec, mat, a)
	if err != nil {
		return nil, 0, err
	}
	history := []GrowthSample{{Cycles: 0, A: a, K: k0}}

	for step := 0; a < to; step++ {
		if step >= in.MaxSteps {
			return nil, 0, &fracture.ComputationError{Stage: "paris growth", Steps: step}
		}

		da := in.RelStep * a
		if a+da > to {
			da = to - a
		}

		mid := a + da/2
		dK, err := stressIntensityAt(model, spec, mat, mid)
		if err != nil {
			return nil, 0, err
		}
		rate := mat.ParisC * math.Pow(dK, mat.ParisM) // m/cycle
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
			return nil, 0, &fracture.ModelResultError{Quantity: "da/dN", Value: rate}
		}

		cycles += (da / 1000.0) / rate
		a += da

		kEnd, err := stressIntensityAt(model, spec, mat, a)
		if err != nil {
			return nil, 0, err
		}
		history = append(history, GrowthSample{Cycles: cycles, A: a, K: kEnd})
	}

	return history, cycles, nil
}
