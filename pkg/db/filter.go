package db

// VolunteerFilter is the store-level query the engine compiles
// predicates into. Every zero field imposes no constraint; set fields
// combine with AND. Only indexed equality lives here; heuristic
// filters (affiliation matching, availability, free-text search) are
// applied by the query engine after the fetch.
type VolunteerFilter struct {
	Role              string
	Status            string
	VolunteeredBefore *bool
	AssignedLocation  *string
	UnassignedOnly    bool
}

// Matches reports whether a volunteer satisfies the filter. Store
// implementations that cannot push the filter into their query (the
// in-memory store) evaluate it with this; the reference semantics for
// both stores live here.
func (f VolunteerFilter) Matches(v *Volunteer) bool {
	if f.Role != "" && v.Role != f.Role {
		return false
	}
	if f.Status != "" && v.Status != f.Status {
		return false
	}
	if f.VolunteeredBefore != nil && v.VolunteeredBefore != *f.VolunteeredBefore {
		return false
	}
	if f.AssignedLocation != nil && v.AssignedLocation != *f.AssignedLocation {
		return false
	}
	if f.UnassignedOnly && !v.Unassigned() {
		return false
	}
	return true
}

// FieldPatch is the allow-listed set of assignment fields a partial
// update may change. Nil members are left untouched.
type FieldPatch struct {
	AssignedLocation   *string
	AssignedSupervisor *string
	AssignedShifts     *[]string
	Notes              *string
}

// Empty reports whether the patch changes nothing
func (p FieldPatch) Empty() bool {
	return p.AssignedLocation == nil && p.AssignedSupervisor == nil &&
		p.AssignedShifts == nil && p.Notes == nil
}

// Apply copies the set members of the patch onto a volunteer record
func (p FieldPatch) Apply(v *Volunteer) {
	if p.AssignedLocation != nil {
		v.AssignedLocation = *p.AssignedLocation
	}
	if p.AssignedSupervisor != nil {
		v.AssignedSupervisor = *p.AssignedSupervisor
	}
	if p.AssignedShifts != nil {
		v.AssignedShifts = append([]string(nil), (*p.AssignedShifts)...)
	}
	if p.Notes != nil {
		v.Notes = *p.Notes
	}
}
