package assess

import "github.com/san-kum/cracklab/internal/fatigue"

// Status is the terminal outcome of one assessment. One evaluation
// produces exactly one status; there are no transitions afterwards.
type Status string

const (
	StatusAcceptable   Status = "acceptable"
	StatusMarginal     Status = "marginal"
	StatusUnacceptable Status = "unacceptable"
)

// FractureResult holds the stress-intensity stage outputs.
type FractureResult struct {
	// Y is the geometry correction factor, finite and positive.
	Y float64 `json:"y"`

	// StressIntensity is K_I in MPa·√m.
	StressIntensity float64 `json:"k_i"`

	// SafetyFactor is K_IC/K_I. It is +Inf only in the degenerate
	// K_I == 0 case, which validated inputs cannot produce.
	SafetyFactor float64 `json:"fracture_safety_factor"`
}

// SafetyAssessment is the single coherent output of an evaluation. The
// status is always derived from both constituent results; Explanation
// names the governing criterion.
type SafetyAssessment struct {
	Status      Status          `json:"status"`
	Fracture    FractureResult  `json:"fracture"`
	Fatigue     *fatigue.Result `json:"fatigue"`
	Explanation string          `json:"explanation"`
	Warnings    []string        `json:"warnings,omitempty"`
}
