package education

import (
	"context"
	"fmt"
	"testing"
	"time"

	"praxia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeEducationRepo struct {
	courses   map[string]*models.Course
	materials []models.Material
	sessions  []models.LiveSession
	messages  []models.ChatMessage
	nextID    int
}

func newFakeEducationRepo() *fakeEducationRepo {
	return &fakeEducationRepo{courses: make(map[string]*models.Course)}
}

func (r *fakeEducationRepo) id() string {
	r.nextID++
	return fmt.Sprintf("id-%d", r.nextID)
}

func (r *fakeEducationRepo) CreateCourse(_ context.Context, course *models.Course) error {
	course.ID = r.id()
	r.courses[course.ID] = course
	return nil
}

func (r *fakeEducationRepo) GetCourse(_ context.Context, id string) (*models.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return c, nil
}

func (r *fakeEducationRepo) GetAllCourses(_ context.Context) ([]models.Course, error) {
	out := make([]models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeEducationRepo) AddMaterial(_ context.Context, material *models.Material) error {
	material.ID = r.id()
	r.materials = append(r.materials, *material)
	return nil
}

func (r *fakeEducationRepo) GetMaterials(_ context.Context, courseID string) ([]models.Material, error) {
	var out []models.Material
	for _, m := range r.materials {
		if m.CourseID == courseID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeEducationRepo) ScheduleSession(_ context.Context, session *models.LiveSession) error {
	session.ID = r.id()
	r.sessions = append(r.sessions, *session)
	return nil
}

func (r *fakeEducationRepo) GetUpcomingSessions(_ context.Context, courseID string, after time.Time) ([]models.LiveSession, error) {
	var out []models.LiveSession
	for _, s := range r.sessions {
		if s.CourseID == courseID && s.StartsAt.After(after) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeEducationRepo) AppendChatMessage(_ context.Context, msg *models.ChatMessage) error {
	msg.ID = r.id()
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeEducationRepo) GetChatMessagesSince(_ context.Context, courseID string, since time.Time, limit int64) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range r.messages {
		if m.CourseID == courseID && m.SentAt.After(since) {
			out = append(out, m)
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, mongo.ErrNoDocuments }
func (r *fakeUserRepo) GetAll() ([]models.User, error)          { return nil, nil }
func (r *fakeUserRepo) Create(u *models.User) error             { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Update(u *models.User) error             { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Delete(id string) error                  { delete(r.users, id); return nil }
func (r *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return r.GetByID(id)
}
func (r *fakeUserRepo) EnsureIndexes() error { return nil }

// fakeChatCache is an in-memory ChatCache with a drainable window.
type fakeChatCache struct {
	windows map[string][]string
}

func newFakeChatCache() *fakeChatCache {
	return &fakeChatCache{windows: make(map[string][]string)}
}

func (c *fakeChatCache) Push(_ context.Context, courseID string, payload []byte) error {
	c.windows[courseID] = append(c.windows[courseID], string(payload))
	return nil
}

func (c *fakeChatCache) Window(_ context.Context, courseID string) ([]string, error) {
	return c.windows[courseID], nil
}

func newTestService(now time.Time) (*DefaultEducationService, *fakeEducationRepo) {
	repo := newFakeEducationRepo()
	users := &fakeUserRepo{users: map[string]*models.User{
		"admin-1": {ID: "admin-1", Name: "Ada", Role: models.RoleAdmin},
		"user-1":  {ID: "user-1", Name: "Pat", Role: models.RoleUser},
	}}
	svc := &DefaultEducationService{
		Repo:  repo,
		Users: users,
		Now:   func() time.Time { return now },
	}
	return svc, repo
}

func TestCreateCourseRequiresAdmin(t *testing.T) {
	svc, _ := newTestService(time.Now())
	req := models.CreateCourseRequest{Title: "Neuroanatomy"}

	if _, err := svc.CreateCourse(context.Background(), "user-1", req); err == nil {
		t.Error("ordinary user created a course")
	}
	course, err := svc.CreateCourse(context.Background(), "admin-1", req)
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if course.TeacherID != "admin-1" {
		t.Errorf("teacher = %q, want creating admin", course.TeacherID)
	}
}

func TestAddMaterialUnknownCourse(t *testing.T) {
	svc, _ := newTestService(time.Now())
	_, err := svc.AddMaterial(context.Background(), "admin-1", "missing", models.AddMaterialRequest{
		Title: "Slides", URL: "https://example.com/slides.pdf",
	})
	if err == nil {
		t.Fatal("material attached to a missing course")
	}
}

func TestScheduleSessionRejectsPast(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	course, err := svc.CreateCourse(context.Background(), "admin-1", models.CreateCourseRequest{Title: "C1"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	_, err = svc.ScheduleSession(context.Background(), "admin-1", course.ID, models.ScheduleSessionRequest{
		Title: "Late", StartsAt: now.Add(-time.Hour), JoinURL: "https://meet.example.com/x",
	})
	if err == nil {
		t.Fatal("past session scheduled")
	}

	session, err := svc.ScheduleSession(context.Background(), "admin-1", course.ID, models.ScheduleSessionRequest{
		Title: "On time", StartsAt: now.Add(time.Hour), JoinURL: "https://meet.example.com/x",
	})
	if err != nil {
		t.Fatalf("future session: %v", err)
	}

	upcoming, err := svc.ListUpcomingSessions(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].ID != session.ID {
		t.Fatalf("upcoming = %+v, want the scheduled session", upcoming)
	}
}

func TestChatPostAndPoll(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := context.Background()
	course, err := svc.CreateCourse(ctx, "admin-1", models.CreateCourseRequest{Title: "C1"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	first, err := svc.PostChatMessage(ctx, "user-1", course.ID, models.PostChatMessageRequest{Body: "hello"})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if first.AuthorName != "Pat" {
		t.Errorf("author name = %q", first.AuthorName)
	}

	svc.Now = func() time.Time { return now.Add(time.Minute) }
	second, err := svc.PostChatMessage(ctx, "user-1", course.ID, models.PostChatMessageRequest{Body: "again"})
	if err != nil {
		t.Fatalf("post: %v", err)
	}

	// Cursor between the two messages returns only the newer one.
	got, err := svc.PollChatMessages(ctx, course.ID, first.SentAt)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(got) != 1 || got[0].ID != second.ID {
		t.Fatalf("poll = %+v, want only the second message", got)
	}

	// The zero cursor returns the full history.
	all, err := svc.PollChatMessages(ctx, course.ID, time.Time{})
	if err != nil {
		t.Fatalf("poll all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("poll all returned %d messages, want 2", len(all))
	}
}

func TestChatPollServedFromCache(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now)
	svc.ChatCache = newFakeChatCache()
	ctx := context.Background()
	course, err := svc.CreateCourse(ctx, "admin-1", models.CreateCourseRequest{Title: "C1"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	first, err := svc.PostChatMessage(ctx, "user-1", course.ID, models.PostChatMessageRequest{Body: "one"})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	svc.Now = func() time.Time { return now.Add(time.Minute) }
	second, err := svc.PostChatMessage(ctx, "user-1", course.ID, models.PostChatMessageRequest{Body: "two"})
	if err != nil {
		t.Fatalf("post: %v", err)
	}

	// Drop the primary copy: a poll whose cursor the window covers must be
	// answered from the cache alone.
	repo.messages = nil
	got, err := svc.PollChatMessages(ctx, course.ID, first.SentAt)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(got) != 1 || got[0].ID != second.ID {
		t.Fatalf("poll = %+v, want the second message from the cache", got)
	}
}

func TestChatPollFallsBackWhenWindowIncomplete(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	cache := newFakeChatCache()
	svc.ChatCache = cache
	ctx := context.Background()
	course, err := svc.CreateCourse(ctx, "admin-1", models.CreateCourseRequest{Title: "C1"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	first, err := svc.PostChatMessage(ctx, "user-1", course.ID, models.PostChatMessageRequest{Body: "one"})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	svc.Now = func() time.Time { return now.Add(5 * time.Minute) }
	second, err := svc.PostChatMessage(ctx, "user-1", course.ID, models.PostChatMessageRequest{Body: "two"})
	if err != nil {
		t.Fatalf("post: %v", err)
	}

	// The cached window expires and is recreated by a later message, so it
	// now starts after the poller's cursor.
	cache.windows[course.ID] = nil
	svc.Now = func() time.Time { return now.Add(20 * time.Minute) }
	third, err := svc.PostChatMessage(ctx, "user-1", course.ID, models.PostChatMessageRequest{Body: "three"})
	if err != nil {
		t.Fatalf("post: %v", err)
	}

	got, err := svc.PollChatMessages(ctx, course.ID, first.SentAt)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(got) != 2 || got[0].ID != second.ID || got[1].ID != third.ID {
		t.Fatalf("poll = %+v, want the second and third messages from the primary store", got)
	}

	// The zero cursor always reads the full history from the primary store.
	all, err := svc.PollChatMessages(ctx, course.ID, time.Time{})
	if err != nil {
		t.Fatalf("poll all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("poll all returned %d messages, want 3", len(all))
	}
}

func TestChatValidation(t *testing.T) {
	svc, _ := newTestService(time.Now())
	ctx := context.Background()
	course, err := svc.CreateCourse(ctx, "admin-1", models.CreateCourseRequest{Title: "C1"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	if _, err := svc.PostChatMessage(ctx, "user-1", course.ID, models.PostChatMessageRequest{Body: "  "}); err == nil {
		t.Error("empty message accepted")
	}
	if _, err := svc.PostChatMessage(ctx, "ghost", course.ID, models.PostChatMessageRequest{Body: "hi"}); err == nil {
		t.Error("unknown author accepted")
	}
	if _, err := svc.PostChatMessage(ctx, "user-1", "missing", models.PostChatMessageRequest{Body: "hi"}); err == nil {
		t.Error("message posted to a missing course")
	}
}
