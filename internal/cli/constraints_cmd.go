package cli

import (
	"context"
	"fmt"

	"github.com/cadence-sh/cadence/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConstraintsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constraints",
		Short: "Manage availability constraints",
	}

	cmd.AddCommand(
		newConstraintsSetCmd(app),
		newConstraintsShowCmd(app),
	)

	return cmd
}

func newConstraintsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set FILE",
		Short: "Replace availability constraints from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Constraints.SetFromFile(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Updated constraints — sleep %s–%s, %d blocks, %d exceptions\n",
				c.SleepStart.Clock(), c.SleepEnd.Clock(), len(c.Blocks), len(c.Exceptions))
			return nil
		},
	}
}

func newConstraintsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored availability constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Constraints.Get(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatConstraints(c))
			return nil
		},
	}
}
