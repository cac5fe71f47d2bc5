// File: handlers/bundle.go
package handlers

import (
	userRepo "praxia/database/repository/user"
	"praxia/middleware"
)

// HandlerBundle groups the per-domain handlers and the pieces route
// registration needs for middleware wiring.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// Resolvers for the two identity providers. Appointment, board and
	// publication routes authenticate through the primary resolver; the
	// education portal uses the Firebase resolver, mirroring how the
	// original deployment split its sub-features.
	PrimaryResolver  middleware.ActorResolver
	FirebaseResolver middleware.ActorResolver

	Appointment *AppointmentHandler
	User        *UserHandler
	Board       *BoardHandler
	Publication *PublicationHandler
	Education   *EducationHandler
}
