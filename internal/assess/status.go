package assess

import (
	"fmt"

	"github.com/san-kum/cracklab/internal/fatigue"
	"github.com/san-kum/cracklab/internal/fracture"
)

// Marginal-band defaults: a fracture safety factor less than
// MarginalSFRatio times the required value, or a life fraction at or
// above MarginalLifeFraction, downgrades acceptable to marginal.
const (
	DefaultMarginalSFRatio      = 1.2
	DefaultMarginalLifeFraction = 0.8
)

// statusRule is one row of the decision table. Rules are evaluated in
// precedence order; the first match wins.
type statusRule struct {
	name    string
	applies func(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) bool
	status  Status
	explain func(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) string
}

// resolve merges fracture and fatigue results into one terminal status.
// Every row references at least one of the two constituent results, and
// the fall-through row reports both margins, so a status can never be
// derived from fracture alone.
func (e *Evaluator) resolve(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) (Status, string) {
	table := []statusRule{
		{
			name: "crack already critical",
			applies: func(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) bool {
				n, ok := ft.CyclesToFailure.Value()
				return ok && n == 0
			},
			status: StatusUnacceptable,
			explain: func(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) string {
				return fmt.Sprintf("initial crack size already at or beyond critical size %.3g mm; zero cycles to failure",
					ft.CriticalCrackSize)
			},
		},
		{
			name: "fracture safety factor below required",
			applies: func(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) bool {
				return fr.SafetyFactor < mat.RequiredFractureSF
			},
			status: StatusUnacceptable,
			explain: func(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) string {
				return fmt.Sprintf("fracture safety factor %.2f below required %.2f",
					fr.SafetyFactor, mat.RequiredFractureSF)
			},
		},
		{
			name: "design life exceeds fatigue life",
			applies: func(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) bool {
				return ft.CyclesToFailure.IsFinite() && float64(ft.LifeFractionUsed) >= 1.0
			},
			status: StatusUnacceptable,
			explain: func(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) string {
				return fmt.Sprintf("design life consumes %.0f%% of the %s-cycle fatigue life",
					100*float64(ft.LifeFractionUsed), ft.CyclesToFailure)
			},
		},
		{
			name: "fracture safety factor in marginal band",
			applies: func(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) bool {
				return fr.SafetyFactor < mat.RequiredFractureSF*e.MarginalSFRatio
			},
			status: StatusMarginal,
			explain: func(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) string {
				return fmt.Sprintf("fracture safety factor %.2f within %.0f%% of required %.2f",
					fr.SafetyFactor, 100*(e.MarginalSFRatio-1), mat.RequiredFractureSF)
			},
		},
		{
			name: "life fraction in marginal band",
			applies: func(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) bool {
				return ft.CyclesToFailure.IsFinite() && float64(ft.LifeFractionUsed) >= e.MarginalLifeFraction
			},
			status: StatusMarginal,
			explain: func(fr FractureResult, ft *fatigue.Result, mat *fracture.MaterialAndLoadSpec) string {
				return fmt.Sprintf("life fraction %.2f within marginal band below 1.0",
					float64(ft.LifeFractionUsed))
			},
		},
	}

	for _, rule := range table {
		if rule.applies(fr, ft, mat) {
			return rule.status, rule.explain(fr, ft, mat)
		}
	}

	explanation := fmt.Sprintf("fracture safety factor %.2f against required %.2f; life fraction %.2f",
		fr.SafetyFactor, mat.RequiredFractureSF, float64(ft.LifeFractionUsed))
	if !ft.CriticalCrackReached {
		explanation += "; " + fracture.NoCrossingLabel
	}
	return StatusAcceptable, explanation
}
