package formatter

import (
	"fmt"
	"strings"

	"github.com/cadence-sh/cadence/internal/domain"
)

// FormatPlanList renders a styled plan list inside a bordered box.
func FormatPlanList(plans []*domain.Plan) string {
	headers := []string{"ID", "TITLE", "PHASES", "PREFERENCE", "IMPORTED"}
	rows := make([][]string, 0, len(plans))

	for _, p := range plans {
		pref := Dim("--")
		if p.Preference != domain.PrefNone {
			pref = StylePurple.Render(string(p.Preference))
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Title),
			StyleFg.Render(fmt.Sprintf("%d", len(p.Phases))),
			pref,
			Dim(p.CreatedAt.Format("Jan 2, 2006")),
		})
	}

	return RenderBox("Plans", RenderTable(headers, rows))
}

// FormatPlanInspect renders a plan's phase hierarchy with per-item detail.
func FormatPlanInspect(p *domain.Plan) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Title) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UUID"), TruncID(p.ID)))
	if p.Preference != domain.PrefNone {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("PREF"), StylePurple.Render(string(p.Preference))))
	}
	b.WriteString("\n")

	for _, ph := range p.Phases {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			StyleHeader.Render(fmt.Sprintf("Phase %d", ph.Number)),
			Bold(ph.Title),
			Dim(fmt.Sprintf("(weeks %d–%d)", ph.StartWeek, ph.EndWeek))))

		for _, m := range ph.Milestones {
			marker := StyleBlue.Render("○")
			if m.Completed {
				marker = StyleDim.Render("✔")
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", marker, StyleFg.Render(m.Title)))

			for _, t := range m.Tasks {
				b.WriteString("    " + planTaskLine(t) + "\n")
				for _, st := range t.Subtasks {
					stMarker := StyleDim.Render("·")
					if st.Completed || st.Struck {
						stMarker = StyleDim.Render("✔")
					}
					b.WriteString(fmt.Sprintf("      %s %s\n", stMarker, Dim(st.Title)))
				}
			}
		}
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

func planTaskLine(t domain.Task) string {
	marker := StyleGreen.Render("▸")
	if t.Completed || t.Struck {
		marker = StyleDim.Render("✔")
	}
	line := fmt.Sprintf("%s %s", marker, StyleFg.Render(t.Title))
	if t.Cognitive != "" {
		line += " " + CognitiveBadge(domain.CognitiveType(t.Cognitive))
	}
	if t.EstimatedMin != nil {
		line += " " + Dim(FormatMinutes(*t.EstimatedMin))
	}
	return line
}
