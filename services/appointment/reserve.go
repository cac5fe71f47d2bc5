// File: services/appointment/reserve.go
package appointment

import (
	"context"
	"fmt"

	"praxia/models"
	"praxia/services/notification"
	"praxia/utils"

	"go.uber.org/zap"
)

// Reserve claims one open bucket for the actor. The claim itself is a single
// conditional update in the store: it succeeds only while the slot is still
// unreserved and unblocked, so two racing actors cannot both book the bucket.
func (s *DefaultAppointmentService) Reserve(ctx context.Context, actorID string, req models.ReserveSlotRequest) (*models.Slot, error) {
	if actorID == "" {
		return nil, ErrUnauthenticated("no actor identity")
	}
	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, ErrInvalidInput(fmt.Sprintf("invalid date: %v", err))
	}
	if req.TimeSlot == "" || req.Language == "" {
		return nil, ErrInvalidInput("timeSlot and language are required")
	}

	// Pre-write lookup: unreserved AND unblocked as one filter. A miss here
	// is a booking conflict and no write is attempted.
	if _, err := s.Repo.FindOpen(ctx, date, req.TimeSlot, s.ProfessionalID); err != nil {
		return nil, ErrSlotNotAvailable(fmt.Sprintf("no open slot for %s %s", date, req.TimeSlot))
	}

	// Actor profile drives the notification emails. A missing profile is an
	// internal-consistency error, distinct from a booking conflict.
	actor, err := s.Users.GetByID(actorID)
	if err != nil || actor == nil {
		return nil, ErrActorNotFound(fmt.Sprintf("profile for actor %s not found", actorID))
	}

	reserved, err := s.Repo.Reserve(ctx, date, req.TimeSlot, s.ProfessionalID, actorID)
	if err != nil {
		// The conditional update matched nothing: the slot was claimed or
		// blocked between the lookup and the write.
		return nil, ErrSlotNotAvailable(fmt.Sprintf("slot %s %s is no longer open", date, req.TimeSlot))
	}

	s.sendBookingMail(actor, reserved, req.Language)
	return reserved, nil
}

// sendBookingMail notifies the professional and confirms to the actor. Both
// sends are best-effort and independently fault-tolerant: a delivery failure
// is logged and never fails the reservation.
func (s *DefaultAppointmentService) sendBookingMail(actor *models.User, slot *models.Slot, language string) {
	if s.Mailer == nil {
		return
	}
	logger := utils.GetLogger()
	details := notification.BookingDetails{
		PatientName:  actor.Name,
		PatientEmail: actor.Email,
		Date:         slot.Date,
		TimeSlot:     slot.TimeSlot,
	}

	notice := notification.BookingNotice(language, details)
	if err := s.Mailer.Send(s.ProfessionalEmail, notice.Subject, notice.Text, notice.HTML); err != nil {
		logger.Warn("Failed to send booking notice to professional",
			zap.String("date", slot.Date),
			zap.String("timeSlot", slot.TimeSlot),
			zap.Error(err),
		)
	}

	if actor.Email == "" {
		return
	}
	confirmation := notification.BookingConfirmation(language, details)
	if err := s.Mailer.Send(actor.Email, confirmation.Subject, confirmation.Text, confirmation.HTML); err != nil {
		logger.Warn("Failed to send booking confirmation to actor",
			zap.String("actorId", actor.ID),
			zap.Error(err),
		)
	}
}
