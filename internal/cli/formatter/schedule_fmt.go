package formatter

import (
	"fmt"
	"strings"

	"github.com/cadence-sh/cadence/internal/domain"
)

// FormatSessionList renders committed sessions inside a bordered box.
func FormatSessionList(title string, sessions []*domain.Session) string {
	headers := []string{"ID", "DATE", "TIME", "WEEK", "TYPE", "DIFF", "LENGTH"}
	rows := make([][]string, 0, len(sessions))

	for _, s := range sessions {
		rows = append(rows, []string{
			TruncID(s.ID),
			StyleFg.Render(HumanDate(s.Date)),
			Bold(LocalTimeRange(s.StartUTC, s.EndUTC, s.Timezone)),
			Dim(fmt.Sprintf("W%d", s.WeekIndex+1)),
			CognitiveBadge(s.Cognitive),
			difficultyDots(s.Difficulty),
			StyleFg.Render(FormatMinutes(s.AllocatedMin)),
		})
	}

	return RenderBox(title, RenderTable(headers, rows))
}

// FormatSessionChecklist renders one session's contained work items.
func FormatSessionChecklist(s *domain.Session, links []domain.SessionItemLink) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s %s\n", StyleDim.Render("WHEN  "),
		StyleFg.Render(HumanDate(s.Date)), Bold(LocalTimeRange(s.StartUTC, s.EndUTC, s.Timezone))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TYPE  "), CognitiveBadge(s.Cognitive)))
	b.WriteString(fmt.Sprintf("%s  %s %s\n\n", StyleDim.Render("LENGTH"),
		StyleFg.Render(FormatMinutes(s.AllocatedMin)),
		Dim("("+FormatMinutes(s.ItemMinutes)+" of work)")))

	for _, link := range links {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render("○"), StyleFg.Render(link.Title)))
	}

	return RenderBox("Session", strings.TrimRight(b.String(), "\n"))
}

// difficultyDots renders difficulty 1-5 as filled dots, colored by weight.
func difficultyDots(d int) string {
	if d < domain.MinDifficulty {
		return Dim("--")
	}
	if d > domain.MaxDifficulty {
		d = domain.MaxDifficulty
	}
	dots := strings.Repeat("●", d) + strings.Repeat("○", domain.MaxDifficulty-d)
	switch {
	case d >= 4:
		return StyleRed.Render(dots)
	case d == 3:
		return StyleYellow.Render(dots)
	default:
		return StyleGreen.Render(dots)
	}
}
