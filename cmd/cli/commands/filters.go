package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nwainaina/fairway-crew/pkg/core/query"
)

// addFilterFlags registers the shared volunteer filter flags used by
// the query, export, and preset commands
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("role", "", "Filter by role (marshal, scorer)")
	cmd.Flags().String("status", "", "Filter by review status (pending, approved, rejected)")
	cmd.Flags().StringSlice("day", nil, "Filter by available tournament day (thursday..sunday, repeatable)")
	cmd.Flags().StringSlice("slot", nil, "Narrow the day filter by time slot (morning, afternoon, all_day)")
	cmd.Flags().String("karen-member", "", "Filter by host club membership (yes or no)")
	cmd.Flags().String("nationality", "", "Filter by nationality token, e.g. kenyan or non-kenyan")
	cmd.Flags().String("volunteered-before", "", "Filter by prior tournament experience (yes or no)")
	cmd.Flags().String("search", "", "Free-text search across name, email, phone, and golf club")
	cmd.Flags().String("location", "", "Filter by exact assigned duty location")
	cmd.Flags().Bool("unassigned", false, "Only volunteers with no duty location")
}

// predicateFromFlags builds a query predicate from the shared flags
func predicateFromFlags(cmd *cobra.Command) (query.Predicate, error) {
	var p query.Predicate

	p.Role, _ = cmd.Flags().GetString("role")
	p.Status, _ = cmd.Flags().GetString("status")
	p.Days, _ = cmd.Flags().GetStringSlice("day")
	p.TimeSlots, _ = cmd.Flags().GetStringSlice("slot")
	p.Nationality, _ = cmd.Flags().GetString("nationality")
	p.Search, _ = cmd.Flags().GetString("search")
	p.UnassignedOnly, _ = cmd.Flags().GetBool("unassigned")

	karenMember, _ := cmd.Flags().GetString("karen-member")
	b, err := parseYesNo("karen-member", karenMember)
	if err != nil {
		return p, err
	}
	p.KarenMember = b

	volunteeredBefore, _ := cmd.Flags().GetString("volunteered-before")
	b, err = parseYesNo("volunteered-before", volunteeredBefore)
	if err != nil {
		return p, err
	}
	p.VolunteeredBefore = b

	if location, _ := cmd.Flags().GetString("location"); location != "" {
		p.AssignedLocation = &location
	}

	return p, nil
}

// parseYesNo maps an optional yes/no flag onto a tri-state bool
func parseYesNo(flag, value string) (*bool, error) {
	switch value {
	case "":
		return nil, nil
	case "yes":
		b := true
		return &b, nil
	case "no":
		b := false
		return &b, nil
	default:
		return nil, fmt.Errorf("--%s must be yes or no, got %q", flag, value)
	}
}
