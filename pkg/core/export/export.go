// Package export renders a query result set and its statistics as a
// flat CSV report with a trailing summary block. The column set is a
// stable contract consumed by the download endpoint and by spreadsheet
// publishing; changing it breaks saved imports downstream.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/nwainaina/fairway-crew/pkg/core/affiliation"
	"github.com/nwainaina/fairway-crew/pkg/core/availability"
	"github.com/nwainaina/fairway-crew/pkg/core/query"
	"github.com/nwainaina/fairway-crew/pkg/db"
)

// Header is the fixed column schema of the report
var Header = []string{
	"First Name", "Last Name", "Email", "Phone", "Nationality",
	"Golf Club", "Karen Member", "Role", "Status", "Volunteered Before",
	"Thursday", "Friday", "Saturday", "Sunday",
	"Assigned Location", "Assigned Supervisor", "Assigned Shifts", "Notes",
}

// SummaryTitle introduces the trailing statistics block
const SummaryTitle = "QUERY RESULTS SUMMARY"

// Formatter renders result sets as CSV
type Formatter struct {
	normalizer *affiliation.Normalizer
}

// NewFormatter creates a Formatter using the given affiliation
// normalizer for the Karen Member column
func NewFormatter(normalizer *affiliation.Normalizer) *Formatter {
	return &Formatter{normalizer: normalizer}
}

// Format renders the result set as CSV: header, one row per volunteer,
// a blank line, then the summary block. An empty result set still
// produces the header and a zero-count summary.
func (f *Formatter) Format(rs *query.ResultSet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range f.Rows(rs) {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	if err := w.Write([]string{}); err != nil {
		return nil, fmt.Errorf("failed to write separator: %w", err)
	}
	for _, line := range SummaryRows(rs.Statistics) {
		if err := w.Write(line); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Rows renders one report row per volunteer, in result-set order
func (f *Formatter) Rows(rs *query.ResultSet) [][]string {
	rows := make([][]string, 0, len(rs.Volunteers))
	for i := range rs.Volunteers {
		rows = append(rows, f.row(&rs.Volunteers[i]))
	}
	return rows
}

func (f *Formatter) row(v *db.Volunteer) []string {
	return []string{
		v.FirstName,
		v.LastName,
		v.Email,
		v.Phone,
		v.Nationality,
		v.GolfClub,
		yesNo(f.normalizer.IsKnownAffiliate(v.GolfClub)),
		v.Role,
		v.Status,
		yesNo(v.VolunteeredBefore),
		availability.Label(v.AvailabilityThursday),
		availability.Label(v.AvailabilityFriday),
		availability.Label(v.AvailabilitySaturday),
		availability.Label(v.AvailabilitySunday),
		v.AssignedLocation,
		v.AssignedSupervisor,
		strings.Join(v.AssignedShifts, "; "),
		v.Notes,
	}
}

// SummaryRows renders the statistics as label/value pairs, in a fixed
// order so reports diff cleanly
func SummaryRows(stats query.Statistics) [][]string {
	rows := [][]string{
		{SummaryTitle, ""},
		{"Total", fmt.Sprintf("%d", stats.Total)},
	}
	for _, status := range []string{db.StatusApproved, db.StatusPending, db.StatusRejected} {
		if n, ok := stats.ByStatus[status]; ok {
			rows = append(rows, []string{"Status: " + status, fmt.Sprintf("%d", n)})
		}
	}
	for _, role := range []string{db.RoleMarshal, db.RoleScorer} {
		if n, ok := stats.ByRole[role]; ok {
			rows = append(rows, []string{"Role: " + role, fmt.Sprintf("%d", n)})
		}
	}
	rows = append(rows,
		[]string{"Karen Members", fmt.Sprintf("%d", stats.KarenMembers)},
		[]string{"Volunteered Before", fmt.Sprintf("%d", stats.VolunteeredBefore)},
		[]string{"First Time", fmt.Sprintf("%d", stats.FirstTime)},
		[]string{"Assigned", fmt.Sprintf("%d", stats.Assigned)},
		[]string{"Unassigned", fmt.Sprintf("%d", stats.Unassigned)},
	)
	return rows
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
