package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cadence-sh/cadence/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const bookingTimeLayout = "2006-01-02 15:04"

func newBookingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Manage fixed calendar bookings",
	}

	cmd.AddCommand(
		newBookingAddCmd(app),
		newBookingListCmd(app),
		newBookingRemoveCmd(app),
	)

	return cmd
}

func newBookingAddCmd(app *App) *cobra.Command {
	var title, start, end, tz string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a fixed booking the scheduler must avoid",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := time.Local
			if tz != "" {
				var err error
				loc, err = time.LoadLocation(tz)
				if err != nil {
					return fmt.Errorf("invalid timezone %q: %w", tz, err)
				}
			}

			startAt, err := time.ParseInLocation(bookingTimeLayout, start, loc)
			if err != nil {
				return fmt.Errorf("invalid start %q, expected \"YYYY-MM-DD HH:MM\": %w", start, err)
			}
			endAt, err := time.ParseInLocation(bookingTimeLayout, end, loc)
			if err != nil {
				return fmt.Errorf("invalid end %q, expected \"YYYY-MM-DD HH:MM\": %w", end, err)
			}

			b, err := app.Bookings.Add(context.Background(), title, startAt, endAt)
			if err != nil {
				return err
			}

			fmt.Printf("Added booking %q [%s]\n", b.Title, b.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Booking title")
	cmd.Flags().StringVar(&start, "start", "", "Start (\"YYYY-MM-DD HH:MM\")")
	cmd.Flags().StringVar(&end, "end", "", "End (\"YYYY-MM-DD HH:MM\")")
	cmd.Flags().StringVar(&tz, "timezone", "", "IANA zone the times are given in (default: local)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newBookingListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			bookings, err := app.Bookings.List(context.Background())
			if err != nil {
				return err
			}

			if len(bookings) == 0 {
				fmt.Println("No bookings found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatBookingList(bookings))
			return nil
		},
	}
}

func newBookingRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			bookingID, err := resolveBookingID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Bookings.Remove(ctx, bookingID); err != nil {
				return err
			}
			fmt.Printf("Removed booking %s\n", bookingID)
			return nil
		},
	}
}

func resolveBookingID(ctx context.Context, app *App, input string) (string, error) {
	bookings, err := app.Bookings.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, b := range bookings {
		if b.ID == input {
			return b.ID, nil
		}
		if strings.HasPrefix(b.ID, input) {
			matches = append(matches, b.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("booking not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("booking ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
