// File: services/appointment/list.go
package appointment

import (
	"context"
	"fmt"

	"praxia/models"
)

// List returns slot records for client-side grouping by day and bucket.
// With no range it returns the full collection; the dataset is a handful of
// buckets per day, so the unbounded read is acceptable here. The optional
// from/to range is the recommended escape hatch once volume grows.
func (s *DefaultAppointmentService) List(ctx context.Context, from, to string) ([]models.Slot, error) {
	if from == "" && to == "" {
		slots, err := s.Repo.GetAll(ctx)
		if err != nil {
			return nil, ErrInternal(fmt.Sprintf("failed to list slots: %v", err))
		}
		return slots, nil
	}

	fromDate, err := normalizeDate(from)
	if err != nil {
		return nil, ErrInvalidInput(fmt.Sprintf("invalid from date: %v", err))
	}
	toDate, err := normalizeDate(to)
	if err != nil {
		return nil, ErrInvalidInput(fmt.Sprintf("invalid to date: %v", err))
	}
	slots, err := s.Repo.GetByDateRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, ErrInternal(fmt.Sprintf("failed to list slots: %v", err))
	}
	return slots, nil
}

// Availability returns only what an ordinary actor may act on.
func (s *DefaultAppointmentService) Availability(ctx context.Context) ([]models.Slot, error) {
	slots, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal(fmt.Sprintf("failed to list slots: %v", err))
	}
	return VisibleSlots(slots, s.now()), nil
}

// DayOverview assembles the privileged occupancy view of one day: all six
// buckets, including ones with no slot document yet.
func (s *DefaultAppointmentService) DayOverview(ctx context.Context, actorID, date string) (*models.DayView, error) {
	if actorID == "" {
		return nil, ErrUnauthenticated("no actor identity")
	}
	actor, err := s.Users.GetByID(actorID)
	if err != nil || actor == nil {
		return nil, ErrUnauthenticated("could not resolve actor identity")
	}
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized("occupancy overview requires the administrative role")
	}

	day, err := normalizeDate(date)
	if err != nil {
		return nil, ErrInvalidInput(fmt.Sprintf("invalid date: %v", err))
	}

	slots, err := s.Repo.GetByDate(ctx, day, s.ProfessionalID)
	if err != nil {
		return nil, ErrInternal(fmt.Sprintf("failed to fetch slots for %s: %v", day, err))
	}
	view := BuildDayView(day, slots, s.now())
	return &view, nil
}
