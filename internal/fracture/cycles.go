package fracture

import (
	"encoding/json"
	"fmt"
	"math"
)

// NoCrossingLabel is the canonical rendering of a cycle count with no
// finite value. Presentation layers show it verbatim instead of a zero.
const NoCrossingLabel = "no K_IC crossing in modeled ligament"

// CycleCount is a tagged cycle quantity: either a finite number of
// cycles or an explicit no-crossing sentinel. The zero value is
// Finite(0), which is a real, meaningful count (a crack already at
// critical size), distinct from the sentinel.
type CycleCount struct {
	value      float64
	noCrossing bool
}

// FiniteCycles returns a finite cycle count.
func FiniteCycles(n float64) CycleCount {
	return CycleCount{value: n}
}

// NoCrossing returns the sentinel for "K_I never reaches K_IC within
// the modeled ligament".
func NoCrossing() CycleCount {
	return CycleCount{noCrossing: true}
}

// IsFinite reports whether the count carries a finite value.
func (c CycleCount) IsFinite() bool { return !c.noCrossing }

// Value returns the finite count. ok is false for the sentinel.
func (c CycleCount) Value() (n float64, ok bool) {
	if c.noCrossing {
		return 0, false
	}
	return c.value, true
}

// Float64 returns the count as a float, +Inf for the sentinel. Use only
// where an ordering is needed; never persist or display this directly.
func (c CycleCount) Float64() float64 {
	if c.noCrossing {
		return math.Inf(1)
	}
	return c.value
}

func (c CycleCount) String() string {
	if c.noCrossing {
		return NoCrossingLabel
	}
	return fmt.Sprintf("%.4g", c.value)
}

// LifeFraction is design life over cycles to failure. It is +Inf
// exactly when cycles to failure is zero; the JSON form encodes that
// case as the string "inf" since encoding/json rejects infinities.
type LifeFraction float64

func (f LifeFraction) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(f), 1) {
		return json.Marshal("inf")
	}
	return json.Marshal(float64(f))
}

func (f *LifeFraction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "inf" {
			return fmt.Errorf("fracture: invalid life fraction %q", s)
		}
		*f = LifeFraction(math.Inf(1))
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = LifeFraction(n)
	return nil
}

// MarshalJSON encodes a finite count as a number and the sentinel as
// the string "no-crossing".
func (c CycleCount) MarshalJSON() ([]byte, error) {
	if c.noCrossing {
		return json.Marshal("no-crossing")
	}
	return json.Marshal(c.value)
}

func (c *CycleCount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "no-crossing" {
			return fmt.Errorf("fracture: invalid cycle count %q", s)
		}
		*c = NoCrossing()
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = FiniteCycles(n)
	return nil
}
