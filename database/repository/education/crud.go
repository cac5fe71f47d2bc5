// File: database/repository/education/crud.go
package educationRepo

import (
	"context"
	"fmt"
	"time"

	"praxia/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoEducationRepo) CreateCourse(ctx context.Context, course *models.Course) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	course.CreatedAt = time.Now().UTC()

	if _, err := r.courses.InsertOne(ctx, course); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (r *mongoEducationRepo) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var course models.Course
	if err := r.courses.FindOne(ctx, bson.M{"id": id}).Decode(&course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *mongoEducationRepo) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.courses.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, nil
}

func (r *mongoEducationRepo) AddMaterial(ctx context.Context, material *models.Material) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if material.ID == "" {
		material.ID = uuid.New().String()
	}
	material.UploadedAt = time.Now().UTC()

	if _, err := r.materials.InsertOne(ctx, material); err != nil {
		return fmt.Errorf("failed to add material: %w", err)
	}
	return nil
}

func (r *mongoEducationRepo) GetMaterials(ctx context.Context, courseID string) ([]models.Material, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	cursor, err := r.materials.Find(ctx, bson.M{"courseId": courseID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch materials: %w", err)
	}
	defer cursor.Close(ctx)

	var materials []models.Material
	if err := cursor.All(ctx, &materials); err != nil {
		return nil, fmt.Errorf("failed to decode materials: %w", err)
	}
	return materials, nil
}

func (r *mongoEducationRepo) ScheduleSession(ctx context.Context, session *models.LiveSession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	if _, err := r.sessions.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to schedule session: %w", err)
	}
	return nil
}

func (r *mongoEducationRepo) GetUpcomingSessions(ctx context.Context, courseID string, after time.Time) ([]models.LiveSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"courseId": courseID, "startsAt": bson.M{"$gte": after}}
	opts := options.Find().SetSort(bson.D{{Key: "startsAt", Value: 1}})
	cursor, err := r.sessions.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.LiveSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

func (r *mongoEducationRepo) AppendChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now().UTC()
	}

	if _, err := r.messages.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

func (r *mongoEducationRepo) GetChatMessagesSince(ctx context.Context, courseID string, since time.Time, limit int64) ([]models.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"courseId": courseID, "sentAt": bson.M{"$gt": since}}
	opts := options.Find().SetSort(bson.D{{Key: "sentAt", Value: 1}}).SetLimit(limit)
	cursor, err := r.messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}
	return messages, nil
}
