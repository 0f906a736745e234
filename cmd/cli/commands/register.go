package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nwainaina/fairway-crew/pkg/core/registration"
)

// RegisterCmd creates the register command
func RegisterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new volunteer in pending status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := registration.Input{}
			input.FirstName, _ = cmd.Flags().GetString("first-name")
			input.LastName, _ = cmd.Flags().GetString("last-name")
			input.Email, _ = cmd.Flags().GetString("email")
			input.Phone, _ = cmd.Flags().GetString("phone")
			input.Nationality, _ = cmd.Flags().GetString("nationality")
			input.IdentificationNumber, _ = cmd.Flags().GetString("id-number")
			input.GolfClub, _ = cmd.Flags().GetString("golf-club")
			input.Role, _ = cmd.Flags().GetString("role")
			input.VolunteeredBefore, _ = cmd.Flags().GetBool("volunteered-before")
			input.AvailabilityThursday, _ = cmd.Flags().GetString("thursday")
			input.AvailabilityFriday, _ = cmd.Flags().GetString("friday")
			input.AvailabilitySaturday, _ = cmd.Flags().GetString("saturday")
			input.AvailabilitySunday, _ = cmd.Flags().GetString("sunday")
			input.PhotoAttached, _ = cmd.Flags().GetBool("photo")
			input.ConsentGiven, _ = cmd.Flags().GetBool("consent")

			v, err := app.Registration.Register(app.Ctx, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Volunteer registered: %s (%s %s, %s, %s)\n",
				v.ID, v.FirstName, v.LastName, v.Role, v.Status)
			return nil
		},
	}

	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("nationality", "", "Nationality")
	cmd.Flags().String("id-number", "", "National ID or passport number")
	cmd.Flags().String("golf-club", "", "Golf club affiliation")
	cmd.Flags().String("role", "", "Role (marshal or scorer)")
	cmd.Flags().Bool("volunteered-before", false, "Has volunteered at a previous edition")
	cmd.Flags().String("thursday", "not_available", "Thursday availability (not_available, morning, afternoon, all_day)")
	cmd.Flags().String("friday", "not_available", "Friday availability")
	cmd.Flags().String("saturday", "not_available", "Saturday availability")
	cmd.Flags().String("sunday", "not_available", "Sunday availability")
	cmd.Flags().Bool("photo", false, "Passport photo attached")
	cmd.Flags().Bool("consent", false, "Data-handling consent given")

	return cmd
}

// ReviewCmd creates the review command for status transitions
func ReviewCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "review <volunteer_id> <approved|rejected|pending>",
		Short: "Set the review status of a volunteer application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Registration.SetStatus(app.Ctx, app.Actor(), args[0], args[1]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Volunteer %s is now %s\n", args[0], args[1])
			return nil
		},
	}
}
