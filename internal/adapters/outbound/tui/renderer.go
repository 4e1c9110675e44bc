package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cemlint/cemlint/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	offGray = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	offStyle      = lipgloss.NewStyle().Foreground(offGray)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	groupStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
)

// RenderRules formats the resolved rule configuration, grouped by rule
// group, in evaluation order.
func RenderRules(cfg domain.RuleConfig) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + headerStyle.Render("cemlint") + "  " + dimStyle.Render("rule configuration") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n")

	group := ""
	for _, s := range cfg.Settings() {
		g, name, _ := strings.Cut(s.Rule, ".")
		if g != group {
			group = g
			b.WriteString("\n  " + groupStyle.Render(g) + "\n")
		}
		fmt.Fprintf(&b, "    %s %s\n", padRight(name, 28), severityTag(s.Severity))
	}

	b.WriteString("\n")
	return b.String()
}

func severityTag(sev domain.Severity) string {
	switch sev {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warning")
	default:
		return offStyle.Render("off")
	}
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case domain.StatusPass:
		return passStyle
	case domain.StatusWarn:
		return warnStyle
	case domain.StatusFail:
		return failStyle
	default:
		return offStyle
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats recorded validation runs for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No validation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Validation History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		line := fmt.Sprintf("  %s  %s  %s  %s  %s",
			dimStyle.Render(e.Timestamp.Format("2006-01-02")),
			faintStyle.Render(hash),
			statusStyle(e.Status).Render(padRight(e.Status, 7)),
			errorTagStyle.Render(fmt.Sprintf("%d errors", e.Errors)),
			warnTagStyle.Render(fmt.Sprintf("%d warnings", e.Warnings)),
		)

		if i > 0 {
			prev := entries[i-1].Errors + entries[i-1].Warnings
			diff := e.Errors + e.Warnings - prev
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
