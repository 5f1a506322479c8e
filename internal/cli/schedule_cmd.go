package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cadence-sh/cadence/internal/cli/formatter"
	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/cadence-sh/cadence/internal/service"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and inspect scheduled sessions",
	}

	cmd.AddCommand(
		newScheduleRunCmd(app),
		newScheduleShowCmd(app),
		newScheduleUpcomingCmd(app),
		newScheduleChecklistCmd(app),
	)

	return cmd
}

func newScheduleRunCmd(app *App) *cobra.Command {
	var start, tz string
	var sessionsPerWeek, minutes int

	cmd := &cobra.Command{
		Use:   "run PLAN",
		Short: "Schedule a plan's open work, replacing any previous run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}

			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			result, err := app.Schedule.Reschedule(ctx, service.ScheduleRequest{
				PlanID:            planID,
				StartDate:         startDate,
				Timezone:          tz,
				SessionsPerWeek:   sessionsPerWeek,
				MinutesPerSession: minutes,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Scheduled %d sessions for %q\n\n", len(result.Sessions), result.Plan.Title)
			fmt.Printf("%s\n", formatter.FormatSessionList("Schedule", result.Sessions))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Schedule start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&tz, "timezone", "UTC", "IANA zone sessions are placed in")
	cmd.Flags().IntVar(&sessionsPerWeek, "sessions-per-week", 3, "Target sessions per week")
	cmd.Flags().IntVar(&minutes, "minutes", 60, "Minutes per session")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PLAN",
		Short: "Show a plan's committed sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}

			sessions, err := app.Schedule.ListByPlan(ctx, planID)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions scheduled. Run `cadence schedule run` first.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatSessionList("Schedule", sessions))
			return nil
		},
	}
}

func newScheduleUpcomingCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show the next sessions across all plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Schedule.ListUpcoming(context.Background(), time.Now().UTC(), limit)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("Nothing upcoming.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatSessionList("Upcoming", sessions))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum sessions to show")

	return cmd
}

func newScheduleChecklistCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "checklist SESSION",
		Short: "Show the work items inside one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			session, err := resolveSession(ctx, app, args[0])
			if err != nil {
				return err
			}
			links, err := app.Schedule.SessionChecklist(ctx, session.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatSessionChecklist(session, links))
			return nil
		},
	}
}

// resolveSession matches a session by UUID or unique UUID prefix across all
// plans' committed sessions.
func resolveSession(ctx context.Context, app *App, input string) (*domain.Session, error) {
	plans, err := app.Plans.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*domain.Session
	for _, p := range plans {
		sessions, err := app.Schedule.ListByPlan(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		for _, s := range sessions {
			if s.ID == input {
				return s, nil
			}
			if strings.HasPrefix(s.ID, input) {
				matches = append(matches, s)
			}
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("session not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("session ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
