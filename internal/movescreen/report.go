package movescreen

import (
	"fmt"
	"strings"
)

// RenderReport formats a screen assessment as a plain text report.
// Pure string formatting, no logic beyond skipping empty sections.
func RenderReport(assessment *Assessment) string {
	var sb strings.Builder

	sb.WriteString("MOVEMENT SCREEN REPORT\n")
	sb.WriteString("======================\n\n")
	fmt.Fprintf(&sb, "Completed: %s\n", assessment.CompletedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "Overall score: %d/%d (%.1f%%)\n", assessment.OverallScore, assessment.MaxOverallScore, assessment.Percentage)
	fmt.Fprintf(&sb, "Risk level: %s\n", assessment.RiskLevel)

	writeSection(&sb, "Primary limitations", assessment.Limitations)
	writeSection(&sb, "Recommended corrective exercises", assessment.Correctives)
	writeSection(&sb, "Exercise restrictions", assessment.Restrictions)
	writeSection(&sb, "Follow up", assessment.FollowUps)

	return sb.String()
}

func writeSection(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(sb, " - %s\n", item)
	}
}
