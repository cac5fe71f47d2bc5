package board

import (
	"context"
	"strings"
	"testing"

	"praxia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakePostRepo struct {
	posts  map[string]*models.Post
	nextID int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

func (r *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	r.nextID++
	post.ID = strings.Repeat("p", r.nextID)
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (r *fakePostRepo) GetRecent(_ context.Context, limit int64) ([]models.Post, error) {
	out := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if int64(len(out)) == limit {
			break
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.posts, id)
	return nil
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

func newTestService() (*DefaultBoardService, *fakePostRepo) {
	posts := newFakePostRepo()
	users := &fakeUserRepo{users: map[string]*models.User{
		"admin-1": {ID: "admin-1", Name: "Ada", Role: models.RoleAdmin},
		"user-1":  {ID: "user-1", Name: "Pat", Role: models.RoleUser},
		"user-2":  {ID: "user-2", Name: "Sam", Role: models.RoleUser},
	}}
	return &DefaultBoardService{Posts: posts, Users: users}, posts
}

func TestCreatePost(t *testing.T) {
	svc, _ := newTestService()

	post, err := svc.CreatePost(context.Background(), "user-1", models.CreatePostRequest{Body: "  hello board  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.Body != "hello board" {
		t.Errorf("body not trimmed: %q", post.Body)
	}
	if post.AuthorName != "Pat" {
		t.Errorf("author name = %q, want display name from profile", post.AuthorName)
	}
}

func TestCreatePostValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreatePost(ctx, "user-1", models.CreatePostRequest{Body: "   "}); err == nil {
		t.Error("whitespace-only body accepted")
	}
	long := strings.Repeat("a", maxPostLength+1)
	if _, err := svc.CreatePost(ctx, "user-1", models.CreatePostRequest{Body: long}); err == nil {
		t.Error("over-length body accepted")
	}
	if _, err := svc.CreatePost(ctx, "ghost", models.CreatePostRequest{Body: "hi"}); err == nil {
		t.Error("unknown author accepted")
	}
}

func TestDeletePostAuthorization(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "user-1", models.CreatePostRequest{Body: "mine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeletePost(ctx, "user-2", post.ID); err == nil {
		t.Fatal("another user deleted the post")
	}
	if err := svc.DeletePost(ctx, "user-1", post.ID); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if _, ok := repo.posts[post.ID]; ok {
		t.Fatal("post still present after delete")
	}

	post, err = svc.CreatePost(ctx, "user-1", models.CreatePostRequest{Body: "again"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeletePost(ctx, "admin-1", post.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}

func TestDeleteMissingPost(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.DeletePost(context.Background(), "admin-1", "nope"); err == nil {
		t.Fatal("expected error for missing post")
	}
}
