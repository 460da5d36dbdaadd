package assess_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cracklab/internal/assess"
	"github.com/san-kum/cracklab/internal/fracture"
)

func throughSpec(a float64) *fracture.CrackSpecification {
	spec, err := fracture.NewCrackSpecification(fracture.Through, fracture.Axial, a, 20, 0, 0)
	Expect(err).NotTo(HaveOccurred())
	return spec
}

func edgeSpec(a, w float64) *fracture.CrackSpecification {
	spec, err := fracture.NewCrackSpecification(fracture.Edge, fracture.Axial, a, w, 0, 0)
	Expect(err).NotTo(HaveOccurred())
	return spec
}

func steelPanel() *fracture.MaterialAndLoadSpec {
	return &fracture.MaterialAndLoadSpec{
		FractureToughness:  50,
		YieldStrength:      355,
		AppliedStress:      150,
		ParisC:             6.9e-12,
		ParisM:             3.0,
		DesignLifeCycles:   1e5,
		RequiredFractureSF: 2.0,
	}
}

var _ = Describe("Evaluate", func() {
	It("rejects invalid material before any numeric work", func() {
		mat := steelPanel()
		mat.AppliedStress = -10

		_, err := assess.Evaluate(throughSpec(2), mat)
		Expect(err).To(MatchError(fracture.ErrInvalidInput))
	})

	It("produces a coherent result for the steel panel scenario", func() {
		result, err := assess.Evaluate(throughSpec(2), steelPanel())
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Fracture.Y).To(BeNumerically(">", 0))
		Expect(result.Fracture.StressIntensity).To(BeNumerically(">", 0))
		Expect(math.IsInf(result.Fracture.SafetyFactor, 0)).To(BeFalse())
		Expect(result.Fatigue.CyclesToFailure.IsFinite()).To(BeTrue())
		Expect(result.Status).NotTo(BeEmpty())
		Expect(result.Explanation).NotTo(BeEmpty())
	})

	Describe("status decision table", func() {
		It("forces unacceptable when the crack is already critical, regardless of fracture margin", func() {
			mat := steelPanel()
			mat.FractureToughness = 30
			mat.RequiredFractureSF = 0.5 // fracture SF alone would pass

			result, err := assess.Evaluate(throughSpec(15), mat)
			Expect(err).NotTo(HaveOccurred())

			n, ok := result.Fatigue.CyclesToFailure.Value()
			Expect(ok).To(BeTrue())
			Expect(n).To(BeZero())
			Expect(result.Status).To(Equal(assess.StatusUnacceptable))
			Expect(result.Explanation).To(ContainSubstring("zero cycles"))
		})

		It("is unacceptable when the fracture safety factor falls below required", func() {
			mat := steelPanel()
			mat.AppliedStress = 30
			mat.FractureToughness = 80
			mat.RequiredFractureSF = 50 // above the ~40 this geometry yields

			result, err := assess.Evaluate(edgeSpec(1, 10), mat)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Fracture.SafetyFactor).To(BeNumerically("<", mat.RequiredFractureSF))
			Expect(result.Status).To(Equal(assess.StatusUnacceptable))
			Expect(result.Explanation).To(ContainSubstring("fracture safety factor"))
		})

		It("is unacceptable when the design life exceeds the fatigue life", func() {
			base, err := assess.Evaluate(throughSpec(2), steelPanel())
			Expect(err).NotTo(HaveOccurred())
			cycles, ok := base.Fatigue.CyclesToFailure.Value()
			Expect(ok).To(BeTrue())

			mat := steelPanel()
			mat.DesignLifeCycles = cycles * 1.5
			result, err := assess.Evaluate(throughSpec(2), mat)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(assess.StatusUnacceptable))
			Expect(result.Explanation).To(ContainSubstring("design life"))
		})

		It("is marginal inside the life-fraction band", func() {
			base, err := assess.Evaluate(throughSpec(2), steelPanel())
			Expect(err).NotTo(HaveOccurred())
			cycles, ok := base.Fatigue.CyclesToFailure.Value()
			Expect(ok).To(BeTrue())

			mat := steelPanel()
			mat.DesignLifeCycles = cycles * 0.9
			result, err := assess.Evaluate(throughSpec(2), mat)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(assess.StatusMarginal))
			Expect(result.Explanation).To(ContainSubstring("life fraction"))
		})

		It("is marginal just above the required fracture safety factor", func() {
			mat := steelPanel()
			mat.AppliedStress = 30
			mat.FractureToughness = 80
			mat.RequiredFractureSF = 35 // SF ~40 sits inside the 20% band

			result, err := assess.Evaluate(edgeSpec(1, 10), mat)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Fracture.SafetyFactor).To(BeNumerically(">=", mat.RequiredFractureSF))
			Expect(result.Status).To(Equal(assess.StatusMarginal))
		})

		It("accepts a lightly used panel and reports both criteria", func() {
			base, err := assess.Evaluate(throughSpec(2), steelPanel())
			Expect(err).NotTo(HaveOccurred())
			cycles, ok := base.Fatigue.CyclesToFailure.Value()
			Expect(ok).To(BeTrue())

			mat := steelPanel()
			mat.DesignLifeCycles = cycles * 0.1
			result, err := assess.Evaluate(throughSpec(2), mat)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(assess.StatusAcceptable))
			Expect(result.Explanation).To(ContainSubstring("fracture safety factor"))
			Expect(result.Explanation).To(ContainSubstring("life fraction"))
		})

		It("never reports acceptable with a fracture safety factor below required", func() {
			for _, stress := range []float64{50, 100, 150, 200} {
				mat := steelPanel()
				mat.AppliedStress = stress
				mat.DesignLifeCycles = 1
				result, err := assess.Evaluate(throughSpec(2), mat)
				Expect(err).NotTo(HaveOccurred())
				if result.Fracture.SafetyFactor < mat.RequiredFractureSF {
					Expect(result.Status).To(Equal(assess.StatusUnacceptable))
				}
			}
		})
	})

	Describe("no-crossing handling", func() {
		var result *assess.SafetyAssessment

		BeforeEach(func() {
			mat := steelPanel()
			mat.AppliedStress = 30
			mat.FractureToughness = 80
			mat.RequiredFractureSF = 2

			var err error
			result, err = assess.Evaluate(edgeSpec(1, 10), mat)
			Expect(err).NotTo(HaveOccurred())
		})

		It("pairs both sentinels and never a zero", func() {
			Expect(result.Fatigue.CriticalCrackReached).To(BeFalse())
			Expect(result.Fatigue.CyclesToFailure.IsFinite()).To(BeFalse())
			Expect(result.Fatigue.InspectionInterval.IsFinite()).To(BeFalse())
			Expect(result.Fatigue.LifeFractionUsed).To(BeEquivalentTo(0))
		})

		It("annotates the acceptable status with the no-crossing label", func() {
			Expect(result.Status).To(Equal(assess.StatusAcceptable))
			Expect(result.Explanation).To(ContainSubstring(fracture.NoCrossingLabel))
		})
	})

	Describe("monotonicity", func() {
		It("does not increase the safety factor when stress increases", func() {
			prev := math.Inf(1)
			for _, stress := range []float64{50, 100, 150, 200} {
				mat := steelPanel()
				mat.AppliedStress = stress
				result, err := assess.Evaluate(throughSpec(2), mat)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Fracture.SafetyFactor).To(BeNumerically("<=", prev))
				prev = result.Fracture.SafetyFactor
			}
		})

		It("does not increase the safety factor when toughness decreases", func() {
			prev := 0.0
			for _, kic := range []float64{30, 50, 80} {
				mat := steelPanel()
				mat.FractureToughness = kic
				result, err := assess.Evaluate(throughSpec(2), mat)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Fracture.SafetyFactor).To(BeNumerically(">=", prev))
				prev = result.Fracture.SafetyFactor
			}
		})
	})

	It("warns about the orientation-based ligament model for rotor geometries", func() {
		spec, err := fracture.NewCrackSpecification(fracture.Through, fracture.Radial, 1, 50, 0, 120)
		Expect(err).NotTo(HaveOccurred())

		mat := steelPanel()
		mat.AppliedStress = 300
		mat.FractureToughness = 87.4

		result, err := assess.Evaluate(spec, mat)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Warnings).To(HaveLen(1))
		Expect(result.Warnings[0]).To(ContainSubstring("orientation-based"))
	})
})
