package appointment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"praxia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeSlotRepo is an in-memory SlotRepository mirroring the store's
// conditional-update semantics.
type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[string]*models.Slot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]*models.Slot)}
}

func slotKey(date, timeSlot, professionalID string) string {
	return fmt.Sprintf("%s|%s|%s", date, timeSlot, professionalID)
}

func (r *fakeSlotRepo) EnableBucket(_ context.Context, slot *models.Slot) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := slotKey(slot.Date, slot.TimeSlot, slot.ProfessionalID)
	if _, exists := r.slots[key]; exists {
		return false, nil
	}
	slot.ID = fmt.Sprintf("slot-%d", len(r.slots)+1)
	slot.CreatedAt = time.Now().UTC()
	s := *slot
	r.slots[key] = &s
	return true, nil
}

func (r *fakeSlotRepo) FindOpen(_ context.Context, date, timeSlot, professionalID string) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[slotKey(date, timeSlot, professionalID)]
	if !ok || s.Reserved() || s.IsBlocked {
		return nil, mongo.ErrNoDocuments
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSlotRepo) Reserve(_ context.Context, date, timeSlot, professionalID, occupantID string) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[slotKey(date, timeSlot, professionalID)]
	if !ok || s.Reserved() || s.IsBlocked {
		return nil, mongo.ErrNoDocuments
	}
	s.OccupantID = &occupantID
	cp := *s
	return &cp, nil
}

func (r *fakeSlotRepo) GetAll(_ context.Context) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Slot, 0, len(r.slots))
	for _, s := range r.slots {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSlotRepo) GetByDateRange(_ context.Context, from, to string) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Slot
	for _, s := range r.slots {
		if s.Date >= from && s.Date <= to {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) GetByDate(_ context.Context, date, professionalID string) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Slot
	for _, s := range r.slots {
		if s.Date == date && s.ProfessionalID == professionalID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) SetBlocked(_ context.Context, date, timeSlot, professionalID string, blocked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[slotKey(date, timeSlot, professionalID)]
	if !ok {
		return mongo.ErrNoDocuments
	}
	s.IsBlocked = blocked
	return nil
}

func (r *fakeSlotRepo) EnsureIndexes() error { return nil }

// fakeUserRepo serves user lookups from a fixed map.
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

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }
func (r *fakeUserRepo) Create(u *models.User) error    { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Update(u *models.User) error    { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Delete(id string) error         { delete(r.users, id); return nil }
func (r *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return r.GetByID(id)
}
func (r *fakeUserRepo) EnsureIndexes() error { return nil }

// fakeMailer records sends and can be told to fail.
type fakeMailer struct {
	sent []string // recipient addresses in send order
	err  error
}

func (m *fakeMailer) Send(to, subject, text, html string) error {
	m.sent = append(m.sent, to)
	return m.err
}

func newTestService(now time.Time) (*DefaultAppointmentService, *fakeSlotRepo, *fakeMailer) {
	slots := newFakeSlotRepo()
	mailer := &fakeMailer{}
	users := &fakeUserRepo{users: map[string]*models.User{
		"admin-1": {ID: "admin-1", Name: "Ada", Email: "ada@example.com", Role: models.RoleAdmin},
		"user-1":  {ID: "user-1", Name: "Pat", Email: "pat@example.com", Role: models.RoleUser},
	}}
	svc := &DefaultAppointmentService{
		Repo:              slots,
		Users:             users,
		Mailer:            mailer,
		ProfessionalID:    "prof-1",
		ProfessionalEmail: "prof@example.com",
		Now:               func() time.Time { return now },
	}
	return svc, slots, mailer
}

func TestEnableRequiresAdmin(t *testing.T) {
	svc, _, _ := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	req := models.EnableSlotsRequest{Date: "2025-06-02", TimeSlots: []string{"10:00 - 11:00"}}

	if _, err := svc.Enable(context.Background(), "", req); CodeOf(err) != CodeUnauthenticated {
		t.Errorf("empty actor: code = %q, want %q", CodeOf(err), CodeUnauthenticated)
	}
	if _, err := svc.Enable(context.Background(), "user-1", req); CodeOf(err) != CodeUnauthorized {
		t.Errorf("ordinary actor: code = %q, want %q", CodeOf(err), CodeUnauthorized)
	}
	if _, err := svc.Enable(context.Background(), "ghost", req); CodeOf(err) != CodeUnauthenticated {
		t.Errorf("unknown actor: code = %q, want %q", CodeOf(err), CodeUnauthenticated)
	}
}

func TestEnableValidation(t *testing.T) {
	svc, _, _ := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	tests := []struct {
		name string
		req  models.EnableSlotsRequest
	}{
		{"bad date", models.EnableSlotsRequest{Date: "junk", TimeSlots: []string{"10:00 - 11:00"}}},
		{"empty buckets", models.EnableSlotsRequest{Date: "2025-06-02", TimeSlots: nil}},
		{"unknown bucket", models.EnableSlotsRequest{Date: "2025-06-02", TimeSlots: []string{"09:00 - 10:00"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Enable(context.Background(), "admin-1", tc.req)
			if CodeOf(err) != CodeInvalidInput {
				t.Fatalf("code = %q, want %q", CodeOf(err), CodeInvalidInput)
			}
		})
	}
}

func TestEnableIdempotent(t *testing.T) {
	svc, _, _ := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	req := models.EnableSlotsRequest{
		Date:      "2025-06-02",
		TimeSlots: []string{"10:00 - 11:00", "11:00 - 12:00"},
	}

	created, err := svc.Enable(context.Background(), "admin-1", req)
	if err != nil {
		t.Fatalf("first enable: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("first enable created %d slots, want 2", len(created))
	}

	// Re-enabling one existing bucket plus one new one reports only the new.
	req.TimeSlots = []string{"11:00 - 12:00", "12:00 - 13:00"}
	created, err = svc.Enable(context.Background(), "admin-1", req)
	if err != nil {
		t.Fatalf("second enable: %v", err)
	}
	if len(created) != 1 || created[0].TimeSlot != "12:00 - 13:00" {
		t.Fatalf("second enable created %+v, want only 12:00 - 13:00", created)
	}
}

func TestEnableReturnsPersistedRecords(t *testing.T) {
	svc, _, _ := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	created, err := svc.Enable(context.Background(), "admin-1", models.EnableSlotsRequest{
		Date: "2025-06-02", TimeSlots: []string{"10:00 - 11:00"},
	})
	if err != nil {
		t.Fatalf("enable: %v", err)
	}
	// The returned records are the stored documents, generated fields included.
	if created[0].ID == "" {
		t.Error("created slot has no id")
	}
	if created[0].CreatedAt.IsZero() {
		t.Error("created slot has no creation timestamp")
	}
}

func TestEnableNormalizesTimestamp(t *testing.T) {
	svc, slots, _ := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	req := models.EnableSlotsRequest{
		Date:      "2025-06-02T00:00:00Z",
		TimeSlots: []string{"10:00 - 11:00"},
	}
	if _, err := svc.Enable(context.Background(), "admin-1", req); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if _, err := slots.FindOpen(context.Background(), "2025-06-02", "10:00 - 11:00", "prof-1"); err != nil {
		t.Fatal("slot not stored under the plain calendar date")
	}
}

func TestReserveSuccessSendsBothMails(t *testing.T) {
	svc, _, mailer := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	enable := models.EnableSlotsRequest{Date: "2025-06-02", TimeSlots: []string{"10:00 - 11:00"}}
	if _, err := svc.Enable(context.Background(), "admin-1", enable); err != nil {
		t.Fatalf("enable: %v", err)
	}

	slot, err := svc.Reserve(context.Background(), "user-1", models.ReserveSlotRequest{
		Date: "2025-06-02", TimeSlot: "10:00 - 11:00", Language: "es",
	})
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if slot.OccupantID == nil || *slot.OccupantID != "user-1" {
		t.Fatalf("occupant = %v, want user-1", slot.OccupantID)
	}
	if len(mailer.sent) != 2 || mailer.sent[0] != "prof@example.com" || mailer.sent[1] != "pat@example.com" {
		t.Fatalf("mails sent to %v, want professional then actor", mailer.sent)
	}
}

func TestReserveErrorPrecedence(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	enable := models.EnableSlotsRequest{Date: "2025-06-02", TimeSlots: []string{"10:00 - 11:00"}}
	if _, err := svc.Enable(ctx, "admin-1", enable); err != nil {
		t.Fatalf("enable: %v", err)
	}

	tests := []struct {
		name    string
		actorID string
		req     models.ReserveSlotRequest
		want    string
	}{
		{
			"unauthenticated first",
			"",
			models.ReserveSlotRequest{Date: "junk", TimeSlot: "", Language: ""},
			CodeUnauthenticated,
		},
		{
			"invalid input before slot lookup",
			"ghost",
			models.ReserveSlotRequest{Date: "junk", TimeSlot: "10:00 - 11:00", Language: "en"},
			CodeInvalidInput,
		},
		{
			"missing slot before actor lookup",
			"ghost",
			models.ReserveSlotRequest{Date: "2025-06-03", TimeSlot: "10:00 - 11:00", Language: "en"},
			CodeSlotNotAvailable,
		},
		{
			"actor not found only when slot open",
			"ghost",
			models.ReserveSlotRequest{Date: "2025-06-02", TimeSlot: "10:00 - 11:00", Language: "en"},
			CodeActorNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Reserve(ctx, tc.actorID, tc.req)
			if CodeOf(err) != tc.want {
				t.Fatalf("code = %q, want %q", CodeOf(err), tc.want)
			}
		})
	}
}

func TestReserveConflictOnSecondClaim(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	enable := models.EnableSlotsRequest{Date: "2025-06-02", TimeSlots: []string{"10:00 - 11:00"}}
	if _, err := svc.Enable(ctx, "admin-1", enable); err != nil {
		t.Fatalf("enable: %v", err)
	}

	req := models.ReserveSlotRequest{Date: "2025-06-02", TimeSlot: "10:00 - 11:00", Language: "en"}
	if _, err := svc.Reserve(ctx, "user-1", req); err != nil {
		t.Fatalf("first reserve: %v", err)
	}
	_, err := svc.Reserve(ctx, "admin-1", req)
	if CodeOf(err) != CodeSlotNotAvailable {
		t.Fatalf("second reserve: code = %q, want %q", CodeOf(err), CodeSlotNotAvailable)
	}
}

func TestReserveMailFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()
	svc, _, mailer := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	mailer.err = errors.New("smtp down")

	enable := models.EnableSlotsRequest{Date: "2025-06-02", TimeSlots: []string{"10:00 - 11:00"}}
	if _, err := svc.Enable(ctx, "admin-1", enable); err != nil {
		t.Fatalf("enable: %v", err)
	}
	slot, err := svc.Reserve(ctx, "user-1", models.ReserveSlotRequest{
		Date: "2025-06-02", TimeSlot: "10:00 - 11:00", Language: "en",
	})
	if err != nil {
		t.Fatalf("reserve should survive mail failure, got %v", err)
	}
	if !slot.Reserved() {
		t.Fatal("slot not reserved")
	}
}

func TestSetBlockedPreventsReservation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	enable := models.EnableSlotsRequest{Date: "2025-06-02", TimeSlots: []string{"10:00 - 11:00"}}
	if _, err := svc.Enable(ctx, "admin-1", enable); err != nil {
		t.Fatalf("enable: %v", err)
	}

	blocked := true
	block := models.BlockSlotRequest{Date: "2025-06-02", TimeSlot: "10:00 - 11:00", Blocked: &blocked}
	if err := svc.SetBlocked(ctx, "user-1", block); CodeOf(err) != CodeUnauthorized {
		t.Fatalf("ordinary actor block: code = %q, want %q", CodeOf(err), CodeUnauthorized)
	}
	if err := svc.SetBlocked(ctx, "admin-1", block); err != nil {
		t.Fatalf("block: %v", err)
	}

	_, err := svc.Reserve(ctx, "user-1", models.ReserveSlotRequest{
		Date: "2025-06-02", TimeSlot: "10:00 - 11:00", Language: "en",
	})
	if CodeOf(err) != CodeSlotNotAvailable {
		t.Fatalf("reserve on blocked: code = %q, want %q", CodeOf(err), CodeSlotNotAvailable)
	}

	// Unblocking reopens the bucket.
	unblocked := false
	block.Blocked = &unblocked
	if err := svc.SetBlocked(ctx, "admin-1", block); err != nil {
		t.Fatalf("unblock: %v", err)
	}
	if _, err := svc.Reserve(ctx, "user-1", models.ReserveSlotRequest{
		Date: "2025-06-02", TimeSlot: "10:00 - 11:00", Language: "en",
	}); err != nil {
		t.Fatalf("reserve after unblock: %v", err)
	}
}

func TestSetBlockedUnenabledBucket(t *testing.T) {
	svc, _, _ := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	blocked := true
	err := svc.SetBlocked(context.Background(), "admin-1", models.BlockSlotRequest{
		Date: "2025-06-09", TimeSlot: "10:00 - 11:00", Blocked: &blocked,
	})
	if CodeOf(err) != CodeSlotNotAvailable {
		t.Fatalf("code = %q, want %q", CodeOf(err), CodeSlotNotAvailable)
	}
}

func TestAvailabilityFiltersReservedBlockedAndPast(t *testing.T) {
	ctx := context.Background()
	// Mid-day clock: the first buckets of the current day are already past.
	svc, _, _ := newTestService(time.Date(2025, 6, 2, 12, 30, 0, 0, time.UTC))

	enable := models.EnableSlotsRequest{
		Date:      "2025-06-02",
		TimeSlots: []string{"10:00 - 11:00", "13:00 - 14:00", "14:00 - 15:00", "15:00 - 16:00"},
	}
	if _, err := svc.Enable(ctx, "admin-1", enable); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if _, err := svc.Reserve(ctx, "user-1", models.ReserveSlotRequest{
		Date: "2025-06-02", TimeSlot: "13:00 - 14:00", Language: "en",
	}); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	blocked := true
	if err := svc.SetBlocked(ctx, "admin-1", models.BlockSlotRequest{
		Date: "2025-06-02", TimeSlot: "14:00 - 15:00", Blocked: &blocked,
	}); err != nil {
		t.Fatalf("block: %v", err)
	}

	open, err := svc.Availability(ctx)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(open) != 1 || open[0].TimeSlot != "15:00 - 16:00" {
		t.Fatalf("availability = %+v, want only 15:00 - 16:00", open)
	}
}

func TestDayOverviewRequiresAdmin(t *testing.T) {
	svc, _, _ := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	if _, err := svc.DayOverview(context.Background(), "user-1", "2025-06-02"); CodeOf(err) != CodeUnauthorized {
		t.Fatalf("code = %q, want %q", CodeOf(err), CodeUnauthorized)
	}
}

func TestDayOverviewMarksOccupancy(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	enable := models.EnableSlotsRequest{Date: "2025-06-02", TimeSlots: []string{"10:00 - 11:00"}}
	if _, err := svc.Enable(ctx, "admin-1", enable); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if _, err := svc.Reserve(ctx, "user-1", models.ReserveSlotRequest{
		Date: "2025-06-02", TimeSlot: "10:00 - 11:00", Language: "en",
	}); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	view, err := svc.DayOverview(ctx, "admin-1", "2025-06-02")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(view.Buckets) != 6 {
		t.Fatalf("overview has %d buckets, want 6", len(view.Buckets))
	}
	first := view.Buckets[0]
	if first.State != "reserved" || !first.Disabled {
		t.Fatalf("reserved bucket rendered as %+v", first)
	}
	if view.Buckets[1].State != "unavailable" || view.Buckets[1].Disabled {
		t.Fatalf("unenabled future bucket rendered as %+v", view.Buckets[1])
	}
}

func TestEnableListReserveRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC))

	created, err := svc.Enable(ctx, "admin-1", models.EnableSlotsRequest{
		Date: "2025-06-01", TimeSlots: []string{"10:00 - 11:00"},
	})
	if err != nil || len(created) != 1 {
		t.Fatalf("enable = (%v, %v), want one created slot", created, err)
	}

	open, err := svc.Availability(ctx)
	if err != nil || len(open) != 1 {
		t.Fatalf("availability = (%v, %v), want the enabled bucket", open, err)
	}

	reserved, err := svc.Reserve(ctx, "user-1", models.ReserveSlotRequest{
		Date: "2025-06-01", TimeSlot: "10:00 - 11:00", Language: "es",
	})
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if reserved.OccupantID == nil || *reserved.OccupantID != "user-1" {
		t.Fatalf("occupant = %v", reserved.OccupantID)
	}

	// The reserved bucket disappears from the ordinary view but shows as a
	// disabled reserved bucket in the privileged overview.
	open, err = svc.Availability(ctx)
	if err != nil || len(open) != 0 {
		t.Fatalf("availability after reserve = (%v, %v), want empty", open, err)
	}
	view, err := svc.DayOverview(ctx, "admin-1", "2025-06-01")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if view.Buckets[0].State != "reserved" || !view.Buckets[0].Disabled {
		t.Fatalf("overview bucket = %+v, want disabled reserved", view.Buckets[0])
	}
}

func TestListRange(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	for _, date := range []string{"2025-06-02", "2025-06-03", "2025-06-05"} {
		req := models.EnableSlotsRequest{Date: date, TimeSlots: []string{"10:00 - 11:00"}}
		if _, err := svc.Enable(ctx, "admin-1", req); err != nil {
			t.Fatalf("enable %s: %v", date, err)
		}
	}

	all, err := svc.List(ctx, "", "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("list all returned %d, want 3", len(all))
	}

	ranged, err := svc.List(ctx, "2025-06-02", "2025-06-03")
	if err != nil {
		t.Fatalf("list range: %v", err)
	}
	if len(ranged) != 2 {
		t.Fatalf("list range returned %d, want 2", len(ranged))
	}

	if _, err := svc.List(ctx, "junk", "2025-06-03"); CodeOf(err) != CodeInvalidInput {
		t.Fatalf("bad range: code = %q, want %q", CodeOf(err), CodeInvalidInput)
	}
}
