package formatter

import (
	"fmt"
	"strings"

	"github.com/cadence-sh/cadence/internal/domain"
)

// FormatBookingList renders calendar bookings inside a bordered box.
func FormatBookingList(bookings []domain.Booking) string {
	headers := []string{"ID", "TITLE", "START (UTC)", "END (UTC)"}
	rows := make([][]string, 0, len(bookings))

	for _, b := range bookings {
		rows = append(rows, []string{
			TruncID(b.ID),
			Bold(b.Title),
			StyleFg.Render(b.Start.Format("Jan 2 15:04")),
			StyleFg.Render(b.End.Format("Jan 2 15:04")),
		})
	}

	return RenderBox("Bookings", RenderTable(headers, rows))
}

// FormatConstraints renders the stored availability constraints.
func FormatConstraints(c *domain.UserConstraints) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SLEEP"),
		StyleFg.Render(c.SleepStart.Clock()+" – "+c.SleepEnd.Clock())))
	if c.PeakStart != c.PeakEnd {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("PEAK "),
			StyleGreen.Render(c.PeakStart.Clock()+" – "+c.PeakEnd.Clock())))
	}

	if len(c.Blocks) > 0 {
		b.WriteString("\n" + StyleHeader.Render("RECURRING BLOCKS") + "\n")
		for _, blk := range c.Blocks {
			days := make([]string, 0, len(blk.Weekdays))
			for _, d := range blk.Weekdays {
				days = append(days, d.String()[:3])
			}
			line := fmt.Sprintf("  %s %s %s %s", StyleRed.Render("■"), Bold(blk.Title),
				Dim(strings.Join(days, " ")),
				StyleFg.Render(blk.Start.Clock()+"–"+blk.End.Clock()))
			if blk.Pattern == domain.PatternA || blk.Pattern == domain.PatternB {
				line += " " + StylePurple.Render("week "+string(blk.Pattern))
			}
			if blk.Timezone != "" {
				line += " " + Dim(blk.Timezone)
			}
			b.WriteString(line + "\n")
		}
	}

	if len(c.Exceptions) > 0 {
		b.WriteString("\n" + StyleHeader.Render("EXCEPTIONS") + "\n")
		for _, ex := range c.Exceptions {
			marker := StyleRed.Render("■ blocked")
			if !ex.Blocked {
				marker = StyleGreen.Render("□ open")
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n", Dim(ex.Date), marker,
				StyleFg.Render(ex.Start.Clock()+"–"+ex.End.Clock())))
		}
	}

	return RenderBox("Availability", strings.TrimRight(b.String(), "\n"))
}
