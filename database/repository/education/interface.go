// File: database/repository/education/interface.go
package educationRepo

import (
	"context"
	"time"

	"praxia/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// EducationRepository defines data access for the classroom portal:
// courses, materials, live sessions and chat messages.
type EducationRepository interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]models.Course, error)

	AddMaterial(ctx context.Context, material *models.Material) error
	GetMaterials(ctx context.Context, courseID string) ([]models.Material, error)

	ScheduleSession(ctx context.Context, session *models.LiveSession) error
	GetUpcomingSessions(ctx context.Context, courseID string, after time.Time) ([]models.LiveSession, error)

	AppendChatMessage(ctx context.Context, msg *models.ChatMessage) error
	GetChatMessagesSince(ctx context.Context, courseID string, since time.Time, limit int64) ([]models.ChatMessage, error)
}

type mongoEducationRepo struct {
	courses   *mongo.Collection
	materials *mongo.Collection
	sessions  *mongo.Collection
	messages  *mongo.Collection
}

// NewMongoEducationRepo constructs a new MongoDB EducationRepository.
func NewMongoEducationRepo(db *mongo.Database) EducationRepository {
	return &mongoEducationRepo{
		courses:   db.Collection("courses"),
		materials: db.Collection("materials"),
		sessions:  db.Collection("liveSessions"),
		messages:  db.Collection("chatMessages"),
	}
}
