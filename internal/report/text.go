// Package report renders assessments for terminals and PDF files.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/cracklab/internal/assess"
	"github.com/san-kum/cracklab/internal/fracture"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	explainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true)

	statusStyles = map[assess.Status]lipgloss.Style{
		assess.StatusAcceptable:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Padding(0, 1),
		assess.StatusMarginal:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true).Padding(0, 1),
		assess.StatusUnacceptable: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Padding(0, 1),
	}
)

// Render writes the terminal report for one assessment.
func Render(w io.Writer, spec *fracture.CrackSpecification, mat *fracture.MaterialAndLoadSpec, a *assess.SafetyAssessment) error {
	fmt.Fprintln(w, headerStyle.Render("crack assessment"))
	fmt.Fprintln(w, labelStyle.Render(spec.String()))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "geometry factor Y\t%.4f\n", a.Fracture.Y)
	fmt.Fprintf(tw, "stress intensity K_I\t%.2f MPa·√m\n", a.Fracture.StressIntensity)
	fmt.Fprintf(tw, "fracture toughness K_IC\t%.2f MPa·√m\n", mat.FractureToughness)
	fmt.Fprintf(tw, "fracture safety factor\t%s (required %.2f)\n",
		formatFloat(a.Fracture.SafetyFactor), mat.RequiredFractureSF)
	if a.Fatigue.CriticalCrackReached {
		fmt.Fprintf(tw, "critical crack size\t%.3f mm\n", a.Fatigue.CriticalCrackSize)
	} else {
		fmt.Fprintf(tw, "critical crack size\t%s\n", fracture.NoCrossingLabel)
	}
	fmt.Fprintf(tw, "cycles to failure\t%s\n", a.Fatigue.CyclesToFailure)
	fmt.Fprintf(tw, "life fraction used\t%s (design life %.3g)\n",
		formatFloat(float64(a.Fatigue.LifeFractionUsed)), mat.DesignLifeCycles)
	fmt.Fprintf(tw, "inspection interval\t%s\n", a.Fatigue.InspectionInterval)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "status: %s\n", statusStyles[a.Status].Render(strings.ToUpper(string(a.Status))))
	fmt.Fprintln(w, explainStyle.Render(a.Explanation))
	for _, warning := range a.Warnings {
		fmt.Fprintln(w, warnStyle.Render("warning: "+warning))
	}
	return nil
}

func formatFloat(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", v)
}
