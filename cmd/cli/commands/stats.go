package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show recruitment progress against the configured quotas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Registration.RecruitmentStats(app.Ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nRecruitment progress:\n\n")
			fmt.Printf("  Marshals: %d / %d\n", stats.Marshals.Current, stats.Marshals.Target)
			fmt.Printf("  Scorers:  %d / %d\n", stats.Scorers.Current, stats.Scorers.Target)
			return nil
		},
	}
}

// LocationsCmd creates the locations command
func LocationsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the configured duty locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("\n%d duty locations:\n\n", len(app.Cfg.AssignmentLocations))
			for _, loc := range app.Cfg.AssignmentLocations {
				fmt.Printf("- %s\n", loc)
			}
			return nil
		},
	}
}

// SupervisorsCmd creates the supervisors command
func SupervisorsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supervisors",
		Short: "List configured supervisors, or approved volunteers with --approved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			approved, _ := cmd.Flags().GetBool("approved")
			if !approved {
				fmt.Printf("\n%d supervisors:\n\n", len(app.Cfg.Supervisors))
				for _, name := range app.Cfg.Supervisors {
					fmt.Printf("- %s\n", name)
				}
				return nil
			}

			volunteers, err := app.Database.FindVolunteers(app.Ctx, db.VolunteerFilter{Status: db.StatusApproved})
			if err != nil {
				return err
			}

			fmt.Printf("\n%d approved volunteers:\n\n", len(volunteers))
			for i := range volunteers {
				v := &volunteers[i]
				fmt.Printf("- %s %s (%s) - %s\n", v.FirstName, v.LastName, v.ID, v.Role)
			}
			return nil
		},
	}

	cmd.Flags().Bool("approved", false, "List approved volunteers from the store instead")
	return cmd
}
