package console

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wattguard/pkg/domain/model"
	"github.com/secmon-lab/wattguard/pkg/domain/types"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	totalColor  = color.New(color.FgGreen, color.Bold)
	labelColor  = color.New(color.FgWhite)
)

// Renderer writes human-readable report summaries. It imposes no contract
// on the numeric model beyond reading the report fields.
type Renderer struct {
	w io.Writer
}

// New creates a renderer writing to w
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// RenderReport writes the executive monthly summary
func (r *Renderer) RenderReport(report *model.Report) error {
	var b strings.Builder

	b.WriteString(headerColor.Sprint("EXECUTIVE SUMMARY - MONTHLY CYBERSECURITY ROI"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Estimated breaches prevented this month: %.3f\n", report.BreachesPrevented)
	fmt.Fprintf(&b, "Confidence range: %.3f - %.3f (median %.3f)\n\n",
		report.Confidence.Low, report.Confidence.High, report.Confidence.Median)

	b.WriteString(headerColor.Sprint("FINANCIAL IMPACT BREAKDOWN"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")
	for _, category := range types.AllSavingsCategories() {
		fmt.Fprintf(&b, "%s: %s\n",
			labelColor.Sprint(category.Label()),
			formatMoney(report.Savings.Amount(category)))
	}
	fmt.Fprintf(&b, "\n%s %s\n",
		totalColor.Sprint("TOTAL ESTIMATED SAVINGS:"),
		totalColor.Sprint(formatMoney(report.Savings.Total)))
	fmt.Fprintf(&b, "Savings range: %s - %s\n\n",
		formatMoney(report.SavingsRange.Low), formatMoney(report.SavingsRange.High))

	b.WriteString(headerColor.Sprint("ROI METRICS"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Estimated monthly ZT investment: %s\n", formatMoney(report.ROI.EstimatedMonthlyInvestment))
	fmt.Fprintf(&b, "ROI ratio: %.1fx return on investment\n", report.ROI.ROIRatio)
	fmt.Fprintf(&b, "Cost efficiency: $%.2f spent per dollar saved\n", report.ROI.CostPerDollarSaved)

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write report summary")
	}
	return nil
}

// RenderScenario writes the compact what-if summary for one preset
func (r *Renderer) RenderScenario(preset model.Preset, report *model.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", headerColor.Sprintf("--- %s Scenario ---", preset.Name))
	fmt.Fprintf(&b, "Attack Surface: %s endpoints\n", formatCount(report.Input.AttackSurfaceSize))
	fmt.Fprintf(&b, "ZT Effectiveness: %.0f%%\n", report.Input.ZeroTrustEffectiveness*100)
	fmt.Fprintf(&b, "Asset Criticality: %.1fx\n", report.Input.AssetCriticalityScore)
	fmt.Fprintf(&b, "Breaches Prevented: %.3f\n", report.BreachesPrevented)
	fmt.Fprintf(&b, "Total Savings: %s\n", formatMoney(report.Savings.Total))
	fmt.Fprintf(&b, "ROI Ratio: %.1fx\n\n", report.ROI.ROIRatio)

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write scenario summary")
	}
	return nil
}

// formatMoney renders a dollar amount rounded to whole dollars with
// thousands separators. Rounding happens only here, never in the model.
func formatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}
	return sign + "$" + groupDigits(strconv.FormatFloat(math.Abs(math.Round(v)), 'f', 0, 64))
}

func formatCount(n int) string {
	return groupDigits(strconv.Itoa(n))
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
