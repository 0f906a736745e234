package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// TeeTimesCmd creates the teeTimes command group
func TeeTimesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teeTimes",
		Short: "Manage tee-time walking scorer groups",
	}

	cmd.AddCommand(teeTimesListCmd(app))
	cmd.AddCommand(teeTimesCreateCmd(app))
	cmd.AddCommand(teeTimesAddCmd(app))
	cmd.AddCommand(teeTimesRemoveCmd(app))

	return cmd
}

func teeTimesListCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tee-time groups with their members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			teeTimes, err := app.TeeTimes.List(app.Ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d tee times:\n\n", len(teeTimes))
			for i := range teeTimes {
				t := &teeTimes[i]
				members := "none"
				if len(t.MemberIDs) > 0 {
					members = strings.Join(t.MemberIDs, ", ")
				}
				fmt.Printf("- %s | Tee %d at %s (%s) | %s | %d/%d | %s\n",
					t.ID, t.TeeNumber, t.TeeTime, t.Wave, t.Professional,
					len(t.MemberIDs), t.Capacity, members)
			}
			return nil
		},
	}
}

func teeTimesCreateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <tee_number> <tee_time>",
		Short: "Create a tee-time group, e.g. create 1 07:30",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			teeNumber, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("tee_number must be a number: %w", err)
			}

			wave, _ := cmd.Flags().GetString("wave")
			professional, _ := cmd.Flags().GetString("professional")
			capacity, _ := cmd.Flags().GetInt("capacity")
			if capacity == 0 {
				capacity = app.Cfg.TeeTimeCapacity
			}

			created, err := app.TeeTimes.Create(app.Ctx, app.Actor(), teeNumber, args[1], wave, professional, capacity)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Tee time created: %s (tee %d at %s, capacity %d)\n",
				created.ID, created.TeeNumber, created.TeeTime, created.Capacity)
			return nil
		},
	}

	cmd.Flags().String("wave", "morning", "Wave (morning or afternoon)")
	cmd.Flags().String("professional", "", "Professional playing in this group")
	cmd.Flags().Int("capacity", 0, "Member capacity (default from config)")

	return cmd
}

func teeTimesAddCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <tee_time_id> <volunteer_id>",
		Short: "Add a volunteer to a tee-time group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.TeeTimes.Add(app.Ctx, app.Actor(), args[0], args[1]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Volunteer %s added to tee time %s\n", args[1], args[0])
			return nil
		},
	}
}

func teeTimesRemoveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <tee_time_id> <volunteer_id>",
		Short: "Remove a volunteer from a tee-time group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.TeeTimes.Remove(app.Ctx, app.Actor(), args[0], args[1]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Volunteer %s removed from tee time %s\n", args[1], args[0])
			return nil
		},
	}
}
