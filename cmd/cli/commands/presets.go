package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// PresetsCmd creates the presets command group
func PresetsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage saved query presets",
	}

	cmd.AddCommand(presetsListCmd(app))
	cmd.AddCommand(presetsSaveCmd(app))
	cmd.AddCommand(presetsDeleteCmd(app))

	return cmd
}

func presetsListCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := app.Presets.List(app.Ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d presets:\n\n", len(presets))
			for i := range presets {
				p := &presets[i]
				fmt.Printf("- %s | %s", p.ID, p.Name)
				if p.Description != "" {
					fmt.Printf(" - %s", p.Description)
				}
				fmt.Printf("\n    %s\n", p.Filters)
			}
			return nil
		},
	}
}

func presetsSaveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the given filter flags as a named preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			description, _ := cmd.Flags().GetString("description")

			p, err := predicateFromFlags(cmd)
			if err != nil {
				return err
			}

			id, err := app.Presets.Save(app.Ctx, name, description, p)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Preset saved: %s\n", id)
			return nil
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().String("name", "", "Preset name (required)")
	cmd.Flags().String("description", "", "Preset description")
	cmd.MarkFlagRequired("name")

	return cmd
}

func presetsDeleteCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <preset_id>",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Presets.Delete(app.Ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Preset %s deleted\n", args[0])
			return nil
		},
	}
}
