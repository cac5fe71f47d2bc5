// File: services/appointment/enable.go
package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"praxia/models"
	"praxia/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Enable creates slot documents for the requested buckets on one date.
// Each bucket is handled independently: buckets that already exist are
// skipped silently, so re-enabling is a no-op rather than an error.
func (s *DefaultAppointmentService) Enable(ctx context.Context, actorID string, req models.EnableSlotsRequest) ([]models.Slot, error) {
	if actorID == "" {
		return nil, ErrUnauthenticated("no actor identity")
	}

	actor, err := s.Users.GetByID(actorID)
	if err != nil || actor == nil {
		return nil, ErrUnauthenticated("could not resolve actor identity")
	}
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized("slot enablement requires the administrative role")
	}

	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, ErrInvalidInput(fmt.Sprintf("invalid date: %v", err))
	}
	if len(req.TimeSlots) == 0 {
		return nil, ErrInvalidInput("timeSlots must be a non-empty array")
	}
	for _, bucket := range req.TimeSlots {
		if !ValidBucket(bucket) {
			return nil, ErrInvalidInput(fmt.Sprintf("unknown time slot %q", bucket))
		}
	}

	logger := utils.GetLogger()
	created := make([]models.Slot, 0, len(req.TimeSlots))
	for _, bucket := range req.TimeSlots {
		slot := models.Slot{
			Date:           date,
			TimeSlot:       bucket,
			ProfessionalID: s.ProfessionalID,
			OccupantID:     nil,
			IsBlocked:      false,
		}
		inserted, err := s.Repo.EnableBucket(ctx, &slot)
		if err != nil {
			return nil, ErrInternal(fmt.Sprintf("failed to enable %s %s: %v", date, bucket, err))
		}
		if inserted {
			created = append(created, slot)
		}
	}

	logger.Info("Enabled appointment slots",
		zap.String("date", date),
		zap.Int("requested", len(req.TimeSlots)),
		zap.Int("created", len(created)),
	)
	return created, nil
}

// SetBlocked marks one enabled bucket as blocked or clears the flag. Blocked
// buckets stay visible in the privileged overview but are never offered and
// cannot be reserved.
func (s *DefaultAppointmentService) SetBlocked(ctx context.Context, actorID string, req models.BlockSlotRequest) error {
	if actorID == "" {
		return ErrUnauthenticated("no actor identity")
	}

	actor, err := s.Users.GetByID(actorID)
	if err != nil || actor == nil {
		return ErrUnauthenticated("could not resolve actor identity")
	}
	if !actor.IsAdmin() {
		return ErrUnauthorized("slot blocking requires the administrative role")
	}

	date, err := normalizeDate(req.Date)
	if err != nil {
		return ErrInvalidInput(fmt.Sprintf("invalid date: %v", err))
	}
	if !ValidBucket(req.TimeSlot) {
		return ErrInvalidInput(fmt.Sprintf("unknown time slot %q", req.TimeSlot))
	}
	if req.Blocked == nil {
		return ErrInvalidInput("blocked flag is required")
	}

	if err := s.Repo.SetBlocked(ctx, date, req.TimeSlot, s.ProfessionalID, *req.Blocked); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSlotNotAvailable(fmt.Sprintf("bucket %s on %s is not enabled", req.TimeSlot, date))
		}
		return ErrInternal(fmt.Sprintf("failed to update block flag: %v", err))
	}

	utils.GetLogger().Info("Updated slot block flag",
		zap.String("date", date),
		zap.String("timeSlot", req.TimeSlot),
		zap.Bool("blocked", *req.Blocked),
	)
	return nil
}

// normalizeDate accepts an ISO timestamp or plain date and reduces it to the
// calendar day, which is the grouping key for slots.
func normalizeDate(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("date is required")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(dateLayout), nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return "", err
	}
	return t.Format(dateLayout), nil
}
