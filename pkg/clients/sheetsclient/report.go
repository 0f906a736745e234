package sheetsclient

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Report is a query result rendered for spreadsheet publishing: a
// fixed header, one row per volunteer, and a trailing summary block of
// label/value pairs.
type Report struct {
	Header  []string
	Rows    [][]string
	Summary [][]string
}

// PublishReport writes a report to the named tab of a spreadsheet.
// If the tab doesn't exist it is created; if it exists its contents
// are overwritten. The table starts at A1, followed by a blank row and
// the summary block.
func (c *Client) PublishReport(spreadsheetID, tabTitle string, report *Report) error {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet metadata: %w", err)
	}

	var existingSheet *sheets.Sheet
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == tabTitle {
			existingSheet = sheet
			break
		}
	}

	if existingSheet == nil {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	} else {
		// Stale rows from a larger previous report would survive an
		// overwrite, so clear the tab first
		clearRange := fmt.Sprintf("%s!A1:ZZ", tabTitle)
		if _, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Do(); err != nil {
			return fmt.Errorf("failed to clear existing tab: %w", err)
		}
	}

	allRows := make([][]interface{}, 0, len(report.Rows)+len(report.Summary)+2)
	allRows = append(allRows, toInterfaceRow(report.Header))
	for _, row := range report.Rows {
		allRows = append(allRows, toInterfaceRow(row))
	}
	allRows = append(allRows, []interface{}{})
	for _, row := range report.Summary {
		allRows = append(allRows, toInterfaceRow(row))
	}

	valueRange := &sheets.ValueRange{
		Values: allRows,
	}

	_, err = c.service.Spreadsheets.Values.Update(
		spreadsheetID,
		fmt.Sprintf("%s!A1", tabTitle),
		valueRange,
	).ValueInputOption("RAW").Do()
	if err != nil {
		return fmt.Errorf("failed to write report to tab: %w", err)
	}

	return nil
}

func toInterfaceRow(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, cell := range row {
		out[i] = cell
	}
	return out
}
