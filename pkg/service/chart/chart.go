// Package chart renders the executive dashboard charts as terminal
// graphics. It consumes the report bundle read-only.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/secmon-lab/wattguard/pkg/domain/model"
	"github.com/secmon-lab/wattguard/pkg/domain/types"
)

const barWidth = 36

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			MarginBottom(1)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 2).
			MarginRight(2).
			MarginBottom(1)

	boxTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFF00"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5F87FF"))

	investmentBarStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFAF00"))

	savingsBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))
)

// Dashboard composes the four report charts into one terminal view
func Dashboard(report *model.Report, projectionMonths int) string {
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(SavingsBreakdown(report.Savings)),
		boxStyle.Render(ConfidenceBounds(report.BreachesPrevented, report.Confidence)),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(Projection(report.Savings.Total, projectionMonths)),
		boxStyle.Render(InvestmentComparison(report.ROI.EstimatedMonthlyInvestment, report.Savings.Total)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Cybersecurity ROI Dashboard - Monthly Report"),
		top,
		bottom,
	)
}

// SavingsBreakdown charts each category's share of total savings
func SavingsBreakdown(savings model.SavingsBreakdown) string {
	var b strings.Builder
	b.WriteString(boxTitleStyle.Render("Savings Breakdown by Category"))
	b.WriteString("\n")

	for _, category := range types.AllSavingsCategories() {
		amount := savings.Amount(category)
		var share float64
		if savings.Total > 0 {
			share = amount / savings.Total
		}
		fmt.Fprintf(&b, "%-22s %s %5.1f%% %s\n",
			category.Label(),
			bar(barStyle, share, barWidth/2),
			share*100,
			shortMoney(amount))
	}
	return strings.TrimRight(b.String(), "\n")
}

// ConfidenceBounds charts the breach prevention estimate with its
// 10th/90th percentile bounds
func ConfidenceBounds(point float64, ci model.ConfidenceInterval) string {
	rows := []struct {
		label string
		value float64
	}{
		{"Low Estimate", ci.Low},
		{"Expected", point},
		{"High Estimate", ci.High},
	}

	maxValue := ci.High
	if point > maxValue {
		maxValue = point
	}

	var b strings.Builder
	b.WriteString(boxTitleStyle.Render("Breaches Prevented (Confidence Bounds)"))
	b.WriteString("\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-14s %s %.3f\n",
			row.label, bar(barStyle, ratio(row.value, maxValue), barWidth), row.value)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Projection charts cumulative savings over the projection period
func Projection(monthlyTotal float64, months int) string {
	if months < 1 {
		months = 1
	}

	var b strings.Builder
	b.WriteString(boxTitleStyle.Render("Cumulative Savings Projection"))
	b.WriteString("\n")

	final := monthlyTotal * float64(months)
	for m := 1; m <= months; m++ {
		cumulative := monthlyTotal * float64(m)
		fmt.Fprintf(&b, "Month %-2d %s %s\n",
			m, bar(savingsBarStyle, ratio(cumulative, final), barWidth), shortMoney(cumulative))
	}
	return strings.TrimRight(b.String(), "\n")
}

// InvestmentComparison charts monthly investment against modeled savings
func InvestmentComparison(investment, savings float64) string {
	maxValue := investment
	if savings > maxValue {
		maxValue = savings
	}

	var b strings.Builder
	b.WriteString(boxTitleStyle.Render("Monthly Investment vs. Savings"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-10s %s %s\n",
		"Investment", bar(investmentBarStyle, ratio(investment, maxValue), barWidth), shortMoney(investment))
	fmt.Fprintf(&b, "%-10s %s %s\n",
		"Savings", bar(savingsBarStyle, ratio(savings, maxValue), barWidth), shortMoney(savings))
	return strings.TrimRight(b.String(), "\n")
}

func ratio(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max
}

// bar renders a proportional horizontal bar. A non-zero value always shows
// at least one cell so small categories stay visible.
func bar(style lipgloss.Style, share float64, width int) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	filled := int(share * float64(width))
	if filled == 0 && share > 0 {
		filled = 1
	}
	return style.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

func shortMoney(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("$%.1fK", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
