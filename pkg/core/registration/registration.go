// Package registration handles volunteer sign-up and the recruitment
// progress counters shown on the public site.
package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

var validate = validator.New()

// Input is a volunteer registration submission
type Input struct {
	FirstName            string `json:"first_name" validate:"required"`
	LastName             string `json:"last_name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Phone                string `json:"phone" validate:"required"`
	Nationality          string `json:"nationality" validate:"required"`
	IdentificationNumber string `json:"identification_number" validate:"required"`
	GolfClub             string `json:"golf_club"`
	Role                 string `json:"role" validate:"required,oneof=marshal scorer"`
	VolunteeredBefore    bool   `json:"volunteered_before"`
	AvailabilityThursday string `json:"availability_thursday" validate:"required,oneof=not_available morning afternoon all_day"`
	AvailabilityFriday   string `json:"availability_friday" validate:"required,oneof=not_available morning afternoon all_day"`
	AvailabilitySaturday string `json:"availability_saturday" validate:"required,oneof=not_available morning afternoon all_day"`
	AvailabilitySunday   string `json:"availability_sunday" validate:"required,oneof=not_available morning afternoon all_day"`
	PhotoAttached        bool   `json:"photo_attached"`
	ConsentGiven         bool   `json:"consent_given"`
}

// Quota is a recruitment target for one role
type Quota struct {
	Role   string `json:"role"`
	Target int    `json:"target"`
}

// RoleStats reports recruitment progress for one role
type RoleStats struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

// Stats reports recruitment progress per role
type Stats struct {
	Marshals RoleStats `json:"marshals"`
	Scorers  RoleStats `json:"scorers"`
}

// Service registers volunteers and reports recruitment stats
type Service struct {
	store  db.VolunteerStore
	audit  db.AuditRecorder
	logger *zap.Logger
	quotas []Quota
}

// NewService creates a registration service with the configured
// recruitment quotas
func NewService(store db.VolunteerStore, audit db.AuditRecorder, logger *zap.Logger, quotas []Quota) *Service {
	return &Service{store: store, audit: audit, logger: logger, quotas: quotas}
}

// Register validates and stores a new volunteer in pending status.
// Consent is mandatory and each email registers once.
func (s *Service) Register(ctx context.Context, input Input) (*db.Volunteer, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid registration: %v: %w", err, db.ErrInvalidArgument)
	}
	if !input.ConsentGiven {
		return nil, fmt.Errorf("consent is required to register: %w", db.ErrInvalidArgument)
	}

	_, err := s.store.FindVolunteerByEmail(ctx, input.Email)
	if err == nil {
		return nil, fmt.Errorf("email %s is already registered: %w", input.Email, db.ErrAlreadyExists)
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}

	now := time.Now().UTC()
	v := db.Volunteer{
		ID:                   db.NewVolunteerID(),
		FirstName:            input.FirstName,
		LastName:             input.LastName,
		Email:                input.Email,
		Phone:                input.Phone,
		Nationality:          input.Nationality,
		IdentificationNumber: input.IdentificationNumber,
		GolfClub:             input.GolfClub,
		Role:                 input.Role,
		Status:               db.StatusPending,
		VolunteeredBefore:    input.VolunteeredBefore,
		AvailabilityThursday: input.AvailabilityThursday,
		AvailabilityFriday:   input.AvailabilityFriday,
		AvailabilitySaturday: input.AvailabilitySaturday,
		AvailabilitySunday:   input.AvailabilitySunday,
		PhotoAttached:        input.PhotoAttached,
		ConsentGiven:         input.ConsentGiven,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.store.InsertVolunteer(ctx, &v); err != nil {
		return nil, fmt.Errorf("failed to store registration: %w", err)
	}
	return &v, nil
}

// SetStatus transitions a volunteer between review states
// (pending/approved/rejected)
func (s *Service) SetStatus(ctx context.Context, actor db.Actor, volunteerID, status string) error {
	switch status {
	case db.StatusPending, db.StatusApproved, db.StatusRejected:
	default:
		return fmt.Errorf("unknown status %q: %w", status, db.ErrInvalidArgument)
	}

	before, err := s.store.GetVolunteer(ctx, volunteerID)
	if err != nil {
		return fmt.Errorf("failed to load volunteer: %w", err)
	}
	if err := s.store.SetVolunteerStatus(ctx, volunteerID, status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	beforeJSON, _ := json.Marshal(map[string]string{"status": before.Status})
	afterJSON, _ := json.Marshal(map[string]string{"status": status})
	entry := db.AuditEntry{
		ID:         db.NewAuditID(),
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		Action:     "set_status",
		EntityType: "volunteer",
		EntityID:   volunteerID,
		Before:     string(beforeJSON),
		After:      string(afterJSON),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.audit.RecordAudit(ctx, entry); err != nil {
		s.logger.Warn("failed to record audit entry",
			zap.String("volunteer_id", volunteerID), zap.Error(err))
	}
	return nil
}

// RecruitmentStats counts non-rejected registrations per role against
// the configured targets
func (s *Service) RecruitmentStats(ctx context.Context) (*Stats, error) {
	volunteers, err := s.store.FindVolunteers(ctx, db.VolunteerFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load volunteers: %w", err)
	}

	counts := map[string]int{}
	for i := range volunteers {
		if volunteers[i].Status != db.StatusRejected {
			counts[volunteers[i].Role]++
		}
	}

	stats := &Stats{}
	for _, q := range s.quotas {
		switch q.Role {
		case db.RoleMarshal:
			stats.Marshals = RoleStats{Current: counts[db.RoleMarshal], Target: q.Target}
		case db.RoleScorer:
			stats.Scorers = RoleStats{Current: counts[db.RoleScorer], Target: q.Target}
		}
	}
	return stats, nil
}
