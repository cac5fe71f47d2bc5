// File: services/appointment/interface.go
package appointment

import (
	"context"
	"time"

	slotRepo "praxia/database/repository/slot"
	userRepo "praxia/database/repository/user"
	"praxia/models"
	"praxia/services/notification"
)

// AppointmentService manages slot enablement, reservation and listing for
// the single professional configured per deployment.
type AppointmentService interface {
	// Enable makes the given buckets reservable on a date. Privileged only;
	// already-enabled buckets are skipped, and only newly created slots are
	// returned.
	Enable(ctx context.Context, actorID string, req models.EnableSlotsRequest) ([]models.Slot, error)
	// Reserve claims one open bucket for the actor and sends best-effort
	// notification mail to the professional and the actor.
	Reserve(ctx context.Context, actorID string, req models.ReserveSlotRequest) (*models.Slot, error)
	// List returns slot records. When from and to are both empty the full
	// collection is returned; otherwise the date range is applied.
	List(ctx context.Context, from, to string) ([]models.Slot, error)
	// Availability returns the slots an ordinary actor may act on: available
	// buckets whose start time has not passed.
	Availability(ctx context.Context) ([]models.Slot, error)
	// SetBlocked flips the blocked flag on one enabled bucket. Privileged only.
	SetBlocked(ctx context.Context, actorID string, req models.BlockSlotRequest) error
	// DayOverview returns the privileged full-occupancy view of one day.
	DayOverview(ctx context.Context, actorID, date string) (*models.DayView, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo              slotRepo.SlotRepository
	Users             userRepo.UserRepository
	Mailer            notification.Mailer
	ProfessionalID    string
	ProfessionalEmail string

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
