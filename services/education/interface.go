// File: services/education/interface.go
package education

import (
	"context"
	"time"

	educationRepo "praxia/database/repository/education"
	userRepo "praxia/database/repository/user"
	"praxia/models"
)

// EducationService manages the virtual classroom portal: courses, materials,
// live sessions and polled chat.
type EducationService interface {
	CreateCourse(ctx context.Context, actorID string, req models.CreateCourseRequest) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)

	AddMaterial(ctx context.Context, actorID, courseID string, req models.AddMaterialRequest) (*models.Material, error)
	ListMaterials(ctx context.Context, courseID string) ([]models.Material, error)

	ScheduleSession(ctx context.Context, actorID, courseID string, req models.ScheduleSessionRequest) (*models.LiveSession, error)
	ListUpcomingSessions(ctx context.Context, courseID string) ([]models.LiveSession, error)

	PostChatMessage(ctx context.Context, actorID, courseID string, req models.PostChatMessageRequest) (*models.ChatMessage, error)
	PollChatMessages(ctx context.Context, courseID string, since time.Time) ([]models.ChatMessage, error)
}

// DefaultEducationService is the production implementation.
type DefaultEducationService struct {
	Repo      educationRepo.EducationRepository
	Users     userRepo.UserRepository
	ChatCache ChatCache

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultEducationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
