package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <volunteer_id>",
		Short: "Assign a volunteer to a duty location, supervisor, and shifts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := patchFromFlags(cmd, app)
			if err != nil {
				return err
			}

			if err := app.Assignments.Assign(app.Ctx, app.Actor(), args[0], patch); err != nil {
				return err
			}

			fmt.Printf("\n✓ Volunteer %s updated\n", args[0])
			return nil
		},
	}

	addPatchFlags(cmd)
	return cmd
}

// BulkAssignCmd creates the bulkAssign command
func BulkAssignCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulkAssign <volunteer_id>...",
		Short: "Apply the same assignment to many volunteers at once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := patchFromFlags(cmd, app)
			if err != nil {
				return err
			}

			result, err := app.Assignments.BulkAssign(app.Ctx, app.Actor(), args, patch)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Updated %d of %d volunteers\n", result.Updated, result.Requested)
			return nil
		},
	}

	addPatchFlags(cmd)
	return cmd
}

func addPatchFlags(cmd *cobra.Command) {
	cmd.Flags().String("location", "", "Duty location, e.g. \"Hole 1\"")
	cmd.Flags().String("supervisor", "", "Supervisor name")
	cmd.Flags().StringSlice("shift", nil, "Shift label (repeatable, replaces existing shifts)")
	cmd.Flags().String("notes", "", "Free-form notes")
}

// patchFromFlags builds a field patch from the assignment flags; only
// flags the caller actually set become part of the patch
func patchFromFlags(cmd *cobra.Command, app *AppContext) (db.FieldPatch, error) {
	var patch db.FieldPatch

	if cmd.Flags().Changed("location") {
		location, _ := cmd.Flags().GetString("location")
		if location != "" && !slices.Contains(app.Cfg.AssignmentLocations, location) {
			return patch, fmt.Errorf("unknown location %q, run the locations command to list valid ones: %w",
				location, db.ErrInvalidArgument)
		}
		patch.AssignedLocation = &location
	}
	if cmd.Flags().Changed("supervisor") {
		supervisor, _ := cmd.Flags().GetString("supervisor")
		patch.AssignedSupervisor = &supervisor
	}
	if cmd.Flags().Changed("shift") {
		shifts, _ := cmd.Flags().GetStringSlice("shift")
		patch.AssignedShifts = &shifts
	}
	if cmd.Flags().Changed("notes") {
		notes, _ := cmd.Flags().GetString("notes")
		patch.Notes = &notes
	}

	return patch, nil
}
