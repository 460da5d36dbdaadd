package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/san-kum/cracklab/internal/fatigue"
	"github.com/san-kum/cracklab/internal/storage"
)

const pdfHistoryRows = 25

// WritePDF renders a saved run as an A4 assessment report.
func WritePDF(path string, meta *storage.RunMetadata, history []fatigue.GrowthSample) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Crack Assessment Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Run: %s", meta.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Timestamp.Format(time.DateOnly)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Geometry and loading")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Crack type", meta.CrackType},
		{"Orientation", meta.Orientation},
		{"Crack size a", fmt.Sprintf("%.3f mm", meta.A)},
		{"Section width W", fmt.Sprintf("%.3f mm", meta.W)},
	}
	if meta.C > 0 {
		rows = append(rows, [2]string{"Semi-width c", fmt.Sprintf("%.3f mm", meta.C)})
	}
	rows = append(rows,
		[2]string{"Applied stress", fmt.Sprintf("%.1f MPa", meta.AppliedStress)},
		[2]string{"Fracture toughness", fmt.Sprintf("%.1f MPa·vm", meta.FractureToughness)},
		[2]string{"Design life", fmt.Sprintf("%.3g cycles", meta.DesignLifeCycles)},
		[2]string{"Required fracture SF", fmt.Sprintf("%.2f", meta.RequiredFractureSF)},
	)
	for _, row := range rows {
		pdf.Cell(60, 6, row[0])
		pdf.Cell(0, 6, row[1])
		pdf.Ln(6)
	}
	pdf.Ln(4)

	a := meta.Assessment
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Result")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	resultRows := [][2]string{
		{"Status", strings.ToUpper(string(a.Status))},
		{"Geometry factor Y", fmt.Sprintf("%.4f", a.Fracture.Y)},
		{"Stress intensity K_I", fmt.Sprintf("%.2f MPa·vm", a.Fracture.StressIntensity)},
		{"Fracture safety factor", formatFloat(a.Fracture.SafetyFactor)},
		{"Cycles to failure", a.Fatigue.CyclesToFailure.String()},
		{"Life fraction used", formatFloat(float64(a.Fatigue.LifeFractionUsed))},
		{"Inspection interval", a.Fatigue.InspectionInterval.String()},
	}
	for _, row := range resultRows {
		pdf.Cell(60, 6, row[0])
		pdf.Cell(0, 6, row[1])
		pdf.Ln(6)
	}
	pdf.Ln(4)
	pdf.MultiCell(0, 6, a.Explanation, "", "L", false)
	for _, warning := range a.Warnings {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, "Warning: "+warning, "", "L", false)
	}

	if len(history) > 1 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Growth trace")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(40, 5, "Cycles")
		pdf.Cell(40, 5, "a (mm)")
		pdf.Cell(40, 5, "dK (MPa·vm)")
		pdf.Ln(6)

		stride := len(history) / pdfHistoryRows
		if stride < 1 {
			stride = 1
		}
		for i := 0; i < len(history); i += stride {
			s := history[i]
			pdf.Cell(40, 5, fmt.Sprintf("%.0f", s.Cycles))
			pdf.Cell(40, 5, fmt.Sprintf("%.4f", s.A))
			pdf.Cell(40, 5, fmt.Sprintf("%.2f", s.K))
			pdf.Ln(5)
		}
	}

	return pdf.OutputFileAndClose(path)
}
