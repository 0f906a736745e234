package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nwainaina/fairway-crew/pkg/core/query"
	"github.com/nwainaina/fairway-crew/pkg/db"
)

// QueryCmd creates the query command
func QueryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query volunteers by combinable filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePredicate(cmd, app)
			if err != nil {
				return err
			}

			result, err := app.Engine.Execute(app.Ctx, p)
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return printJSON(result)
			}

			printResultSet(result)
			return nil
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().String("preset", "", "Run a saved preset by id instead of filter flags")
	cmd.Flags().Bool("json", false, "Print the full result set as JSON")

	return cmd
}

// resolvePredicate loads a saved preset when --preset is given,
// otherwise builds a predicate from the filter flags
func resolvePredicate(cmd *cobra.Command, app *AppContext) (query.Predicate, error) {
	presetID, _ := cmd.Flags().GetString("preset")
	if presetID == "" {
		return predicateFromFlags(cmd)
	}

	presets, err := app.Presets.List(app.Ctx)
	if err != nil {
		return query.Predicate{}, err
	}
	for i := range presets {
		if presets[i].ID == presetID {
			return query.DecodePreset(&presets[i])
		}
	}
	return query.Predicate{}, fmt.Errorf("preset %s: %w", presetID, db.ErrNotFound)
}

func printResultSet(result *query.ResultSet) {
	fmt.Printf("\nFound %d volunteers:\n\n", result.Total)
	for i := range result.Volunteers {
		v := &result.Volunteers[i]
		assignment := "unassigned"
		if v.AssignedLocation != "" {
			assignment = v.AssignedLocation
		}
		fmt.Printf("- %s %s (%s) - %s %s - %s - %s\n",
			v.FirstName, v.LastName, v.ID, v.Status, v.Role, v.Email, assignment)
	}

	stats := result.Statistics
	fmt.Printf("\nSummary: %d total", stats.Total)
	if n, ok := stats.ByStatus[db.StatusApproved]; ok {
		fmt.Printf(", %d approved", n)
	}
	if n, ok := stats.ByStatus[db.StatusPending]; ok {
		fmt.Printf(", %d pending", n)
	}
	fmt.Printf(", %d assigned, %d unassigned\n", stats.Assigned, stats.Unassigned)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
