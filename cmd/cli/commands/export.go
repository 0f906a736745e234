package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nwainaina/fairway-crew/pkg/clients/sheetsclient"
	"github.com/nwainaina/fairway-crew/pkg/core/export"
)

// ExportCmd creates the export command
func ExportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export query results as CSV or publish them to Google Sheets",
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

			sheetID, _ := cmd.Flags().GetString("sheet-id")
			if sheetID == "" {
				sheetID = app.Cfg.ReportSheetID
			}
			publish, _ := cmd.Flags().GetBool("publish")

			if publish {
				if sheetID == "" {
					return fmt.Errorf("no spreadsheet configured: pass --sheet-id or set reportSheetID")
				}

				client, err := app.SheetsClient()
				if err != nil {
					return err
				}

				tab, _ := cmd.Flags().GetString("tab")
				if tab == "" {
					tab = app.Cfg.ReportTab
				}

				report := &sheetsclient.Report{
					Header:  export.Header,
					Rows:    app.Formatter.Rows(result),
					Summary: export.SummaryRows(result.Statistics),
				}
				if err := client.PublishReport(sheetID, tab, report); err != nil {
					return err
				}

				fmt.Printf("\n✓ Published %d volunteers to tab %q\n", result.Total, tab)
				return nil
			}

			data, err := app.Formatter.Format(result)
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				fmt.Print(string(data))
				return nil
			}

			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}
			fmt.Printf("\n✓ Exported %d volunteers to %s\n", result.Total, out)
			return nil
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().String("preset", "", "Run a saved preset by id instead of filter flags")
	cmd.Flags().String("out", "", "Write CSV to this file instead of stdout")
	cmd.Flags().Bool("publish", false, "Publish to Google Sheets instead of CSV")
	cmd.Flags().String("sheet-id", "", "Target spreadsheet id (default from config)")
	cmd.Flags().String("tab", "", "Target tab title (default from config)")

	return cmd
}
