package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/cadence-sh/cadence/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("plan ID is required")
	}

	plans, err := app.Plans.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact UUID match
	for _, p := range plans {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 2. UUID prefix match
	var matches []string
	for _, p := range plans {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("plan not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("plan ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage imported plans",
	}

	cmd.AddCommand(
		newPlanImportCmd(app),
		newPlanListCmd(app),
		newPlanInspectCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

func newPlanImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a plan from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Plans.ImportPlan(context.Background(), args[0])
			if err != nil {
				return err
			}

			taskCount := 0
			for _, ph := range p.Phases {
				for _, m := range ph.Milestones {
					taskCount += len(m.Tasks)
				}
			}
			fmt.Printf("Imported plan %q [%s] — %d phases, %d tasks\n",
				p.Title, p.ID[:8], len(p.Phases), taskCount)
			return nil
		},
	}
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(context.Background())
			if err != nil {
				return err
			}

			if len(plans) == 0 {
				fmt.Println("No plans found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatPlanList(plans))
			return nil
		},
	}
}

func newPlanInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show a plan's phase hierarchy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.GetByID(ctx, planID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatPlanInspect(p))
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a plan and its scheduled sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.Delete(ctx, planID); err != nil {
				return err
			}
			fmt.Printf("Removed plan %s\n", planID)
			return nil
		},
	}
}
