// File: services/education/service.go
package education

import (
	"context"
	"fmt"
	"strings"

	"praxia/models"
)

// requireAdmin resolves the actor and verifies the administrative role.
func (s *DefaultEducationService) requireAdmin(actorID string) (*models.User, error) {
	actor, err := s.Users.GetByID(actorID)
	if err != nil || actor == nil {
		return nil, fmt.Errorf("actor %s not found", actorID)
	}
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("operation requires the administrative role")
	}
	return actor, nil
}

// CreateCourse creates a course (admin only).
func (s *DefaultEducationService) CreateCourse(ctx context.Context, actorID string, req models.CreateCourseRequest) (*models.Course, error) {
	actor, err := s.requireAdmin(actorID)
	if err != nil {
		return nil, err
	}
	course := &models.Course{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		TeacherID:   actor.ID,
	}
	if course.Title == "" {
		return nil, fmt.Errorf("course title is required")
	}
	if err := s.Repo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// ListCourses returns every course.
func (s *DefaultEducationService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.Repo.GetAllCourses(ctx)
}

// AddMaterial attaches a resource to a course (admin only).
func (s *DefaultEducationService) AddMaterial(ctx context.Context, actorID, courseID string, req models.AddMaterialRequest) (*models.Material, error) {
	if _, err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetCourse(ctx, courseID); err != nil {
		return nil, fmt.Errorf("course %s not found: %w", courseID, err)
	}
	material := &models.Material{
		CourseID: courseID,
		Title:    strings.TrimSpace(req.Title),
		URL:      req.URL,
	}
	if err := s.Repo.AddMaterial(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

// ListMaterials returns a course's materials, newest first.
func (s *DefaultEducationService) ListMaterials(ctx context.Context, courseID string) ([]models.Material, error) {
	return s.Repo.GetMaterials(ctx, courseID)
}

// ScheduleSession schedules a live class meeting (admin only).
func (s *DefaultEducationService) ScheduleSession(ctx context.Context, actorID, courseID string, req models.ScheduleSessionRequest) (*models.LiveSession, error) {
	if _, err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetCourse(ctx, courseID); err != nil {
		return nil, fmt.Errorf("course %s not found: %w", courseID, err)
	}
	if req.StartsAt.Before(s.now()) {
		return nil, fmt.Errorf("session start must be in the future")
	}
	session := &models.LiveSession{
		CourseID: courseID,
		Title:    strings.TrimSpace(req.Title),
		StartsAt: req.StartsAt,
		JoinURL:  req.JoinURL,
	}
	if err := s.Repo.ScheduleSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ListUpcomingSessions returns sessions that have not started yet.
func (s *DefaultEducationService) ListUpcomingSessions(ctx context.Context, courseID string) ([]models.LiveSession, error) {
	return s.Repo.GetUpcomingSessions(ctx, courseID, s.now())
}
