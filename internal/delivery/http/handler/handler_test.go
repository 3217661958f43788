package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"jobswipe/internal/delivery/http/middleware"
	"jobswipe/internal/domain/job"
	"jobswipe/internal/domain/matching"
	"jobswipe/internal/domain/swipe"
	"jobswipe/internal/domain/user"
	"jobswipe/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type stubRecommender struct {
	recs      []matching.Recommendation
	err       error
	lastLimit int
}

func (s *stubRecommender) Recommend(_ context.Context, _ uuid.UUID, limit int) ([]matching.Recommendation, error) {
	s.lastLimit = limit
	return s.recs, s.err
}

type stubUsers struct {
	usecase.UserUsecase
	err error
}

func (s stubUsers) Create(_ context.Context, in usecase.CreateUserInput) (user.User, error) {
	if s.err != nil {
		return user.User{}, s.err
	}
	return user.User{ID: uuid.New(), Email: in.Email, Name: in.Name}, nil
}

func (s stubUsers) Get(_ context.Context, id uuid.UUID) (user.User, error) {
	if s.err != nil {
		return user.User{}, s.err
	}
	return user.User{ID: id}, nil
}

type stubJobs struct {
	usecase.JobUsecase
	page pageArgs
}

type pageArgs struct{ page, limit int }

func (s *stubJobs) List(_ context.Context, page, limit int) (usecase.JobPage, error) {
	s.page = pageArgs{page, limit}
	return usecase.JobPage{Items: []job.Job{{ID: uuid.New(), Title: "Dev"}}, Page: page, Limit: 20}, nil
}

func (s *stubJobs) Delete(context.Context, uuid.UUID) error {
	return usecase.ErrJobNotFound
}

type stubSwipes struct {
	usecase.SwipeUsecase
	inserted bool
	batch    []usecase.SwipeInput
}

func (s *stubSwipes) Record(_ context.Context, in usecase.SwipeInput) (swipe.Swipe, bool, error) {
	return swipe.Swipe{ID: uuid.New(), UserID: in.UserID, JobID: in.JobID, Action: swipe.Action(in.Action)}, s.inserted, nil
}

func (s *stubSwipes) RecordBatch(_ context.Context, in []usecase.SwipeInput) (swipe.BatchResult, error) {
	s.batch = in
	return swipe.BatchResult{Inserted: len(in)}, nil
}

func newTestApp(register func(api fiber.Router)) *fiber.App {
	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	register(app.Group("/api/v1"))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) semanticResponse {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	if sr.Status != resp.StatusCode {
		t.Fatalf("%s %s: envelope status %d != http status %d", method, path, sr.Status, resp.StatusCode)
	}
	return sr
}

func TestRecommendations_OK(t *testing.T) {
	jobID := uuid.New()
	rec := &stubRecommender{recs: []matching.Recommendation{{JobID: jobID, ContentScore: 0.7}}}
	app := newTestApp(func(api fiber.Router) {
		NewJobRecommendationHandler(rec, 10).RegisterRoutes(api.Group("/users"))
	})

	sr := doRequest(t, app, "GET", fmt.Sprintf("/api/v1/users/%s/recommendations", uuid.New()), nil)
	if sr.Status != 200 {
		t.Fatalf("expected 200, got %d (%s)", sr.Status, sr.Message)
	}
	if rec.lastLimit != 10 {
		t.Fatalf("expected default limit 10, got %d", rec.lastLimit)
	}

	var items []struct {
		JobID        uuid.UUID `json:"job_id"`
		ContentScore float64   `json:"content_score"`
	}
	if err := json.Unmarshal(sr.Data, &items); err != nil {
		t.Fatalf("data: %v", err)
	}
	if len(items) != 1 || items[0].JobID != jobID || items[0].ContentScore != 0.7 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestRecommendations_EmptyListIsArray(t *testing.T) {
	rec := &stubRecommender{recs: []matching.Recommendation{}}
	app := newTestApp(func(api fiber.Router) {
		NewJobRecommendationHandler(rec, 10).RegisterRoutes(api.Group("/users"))
	})

	sr := doRequest(t, app, "GET", fmt.Sprintf("/api/v1/users/%s/recommendations?limit=0", uuid.New()), nil)
	if sr.Status != 200 || string(sr.Data) != "[]" {
		t.Fatalf("expected 200 with [], got %d %s", sr.Status, sr.Data)
	}
	if rec.lastLimit != 0 {
		t.Fatalf("explicit limit=0 must be passed through, got %d", rec.lastLimit)
	}
}

func TestRecommendations_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{"bad uuid", "/api/v1/users/not-a-uuid/recommendations", nil, 400},
		{"bad limit", "/api/v1/users/" + uuid.NewString() + "/recommendations?limit=abc", nil, 400},
		{"unknown user", "/api/v1/users/" + uuid.NewString() + "/recommendations", usecase.ErrUserNotFound, 404},
		{"storage", "/api/v1/users/" + uuid.NewString() + "/recommendations",
			fmt.Errorf("%w: %w", usecase.ErrStorageUnavailable, errors.New("dial tcp: refused")), 503},
		{"unexpected", "/api/v1/users/" + uuid.NewString() + "/recommendations", errors.New("boom"), 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &stubRecommender{err: tc.err}
			app := newTestApp(func(api fiber.Router) {
				NewJobRecommendationHandler(rec, 10).RegisterRoutes(api.Group("/users"))
			})
			sr := doRequest(t, app, "GET", tc.path, nil)
			if sr.Status != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, sr.Status, sr.Message)
			}
			if tc.status >= 500 && bytes.Contains([]byte(sr.Message), []byte("refused")) {
				t.Fatalf("5xx must not leak the cause: %s", sr.Message)
			}
		})
	}
}

func TestUserHandler_Create(t *testing.T) {
	app := newTestApp(func(api fiber.Router) {
		NewUserHandler(stubUsers{}).RegisterRoutes(api.Group("/users"))
	})

	sr := doRequest(t, app, "POST", "/api/v1/users", map[string]any{"email": "ada@example.com", "name": "Ada"})
	if sr.Status != 201 {
		t.Fatalf("expected 201, got %d (%s)", sr.Status, sr.Message)
	}

	var u struct {
		Email  string   `json:"email"`
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal(sr.Data, &u); err != nil {
		t.Fatalf("data: %v", err)
	}
	if u.Email != "ada@example.com" || u.Skills == nil {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserHandler_Conflict(t *testing.T) {
	app := newTestApp(func(api fiber.Router) {
		NewUserHandler(stubUsers{err: usecase.ErrEmailTaken}).RegisterRoutes(api.Group("/users"))
	})
	sr := doRequest(t, app, "POST", "/api/v1/users", map[string]any{"email": "ada@example.com", "name": "Ada"})
	if sr.Status != 409 {
		t.Fatalf("expected 409, got %d", sr.Status)
	}
}

func TestUserHandler_PatchRequiresAField(t *testing.T) {
	app := newTestApp(func(api fiber.Router) {
		NewUserHandler(stubUsers{}).RegisterRoutes(api.Group("/users"))
	})
	sr := doRequest(t, app, "PATCH", "/api/v1/users/"+uuid.NewString(), map[string]any{})
	if sr.Status != 400 {
		t.Fatalf("expected 400, got %d", sr.Status)
	}
}

func TestJobHandler_ListAndDelete(t *testing.T) {
	jobs := &stubJobs{}
	app := newTestApp(func(api fiber.Router) {
		NewJobHandler(jobs).RegisterRoutes(api.Group("/jobs"))
	})

	sr := doRequest(t, app, "GET", "/api/v1/jobs?page=2", nil)
	if sr.Status != 200 {
		t.Fatalf("expected 200, got %d", sr.Status)
	}
	if jobs.page.page != 2 || jobs.page.limit != 0 {
		t.Fatalf("unexpected paging args: %+v", jobs.page)
	}

	sr = doRequest(t, app, "DELETE", "/api/v1/jobs/"+uuid.NewString(), nil)
	if sr.Status != 404 {
		t.Fatalf("expected 404, got %d", sr.Status)
	}
}

func TestSwipeHandler_Record(t *testing.T) {
	swipes := &stubSwipes{inserted: true}
	app := newTestApp(func(api fiber.Router) {
		NewSwipeHandler(swipes).RegisterRoutes(api.Group("/swipes"))
	})

	body := map[string]any{"user_id": uuid.NewString(), "job_id": uuid.NewString(), "action": "like"}
	if sr := doRequest(t, app, "POST", "/api/v1/swipes", body); sr.Status != 201 {
		t.Fatalf("expected 201 for new swipe, got %d", sr.Status)
	}

	swipes.inserted = false
	if sr := doRequest(t, app, "POST", "/api/v1/swipes", body); sr.Status != 200 {
		t.Fatalf("expected 200 for replaced swipe, got %d", sr.Status)
	}
}

func TestSwipeHandler_Batch(t *testing.T) {
	swipes := &stubSwipes{}
	app := newTestApp(func(api fiber.Router) {
		NewSwipeHandler(swipes).RegisterRoutes(api.Group("/swipes"))
	})

	body := []map[string]any{
		{"user_id": uuid.NewString(), "job_id": uuid.NewString(), "action": "like"},
		{"user_id": uuid.NewString(), "job_id": uuid.NewString(), "action": "dislike"},
	}
	sr := doRequest(t, app, "POST", "/api/v1/swipes/batch", body)
	if sr.Status != 200 {
		t.Fatalf("expected 200, got %d (%s)", sr.Status, sr.Message)
	}
	var res struct {
		InsertedCount int `json:"inserted_count"`
	}
	if err := json.Unmarshal(sr.Data, &res); err != nil {
		t.Fatalf("data: %v", err)
	}
	if res.InsertedCount != 2 || len(swipes.batch) != 2 {
		t.Fatalf("unexpected batch result %+v (%d items)", res, len(swipes.batch))
	}
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type stubCache bool

func (c stubCache) Available() bool { return bool(c) }

func TestHealth(t *testing.T) {
	app := fiber.New()
	NewHealthHandler(stubPinger{}, stubCache(false)).RegisterRoutes(app)
	sr := doRequest(t, app, "GET", "/health", nil)
	if sr.Status != 200 {
		t.Fatalf("expected 200, got %d", sr.Status)
	}

	app = fiber.New()
	NewHealthHandler(stubPinger{err: errors.New("down")}, nil).RegisterRoutes(app)
	sr = doRequest(t, app, "GET", "/health", nil)
	if sr.Status != 503 {
		t.Fatalf("expected 503, got %d", sr.Status)
	}
}

func TestValidation_RejectsBeforeUsecase(t *testing.T) {
	app := newTestApp(func(api fiber.Router) {
		NewUserHandler(stubUsers{}).RegisterRoutes(api.Group("/users"))
	})
	sr := doRequest(t, app, "POST", "/api/v1/users", map[string]any{"email": "not-an-email", "name": "Ada"})
	if sr.Status != 400 {
		t.Fatalf("expected 400, got %d", sr.Status)
	}
	if !strings.Contains(sr.Message, "Email failed email") {
		t.Fatalf("message should name the field: %q", sr.Message)
	}
	// stubUsers has no Update, so reaching the usecase would panic.
	sr = doRequest(t, app, "PATCH", "/api/v1/users/"+uuid.NewString(), map[string]any{"email": "Eve <eve@example.com>"})
	if sr.Status != 400 {
		t.Fatalf("expected 400 for display-name email on PATCH, got %d", sr.Status)
	}

	swipes := &stubSwipes{}
	app = newTestApp(func(api fiber.Router) {
		NewSwipeHandler(swipes).RegisterRoutes(api.Group("/swipes"))
	})
	body := []map[string]any{
		{"user_id": uuid.NewString(), "job_id": uuid.NewString(), "action": "like"},
		{"user_id": uuid.NewString(), "action": "like"},
	}
	sr = doRequest(t, app, "POST", "/api/v1/swipes/batch", body)
	if sr.Status != 400 {
		t.Fatalf("expected 400, got %d", sr.Status)
	}
	if swipes.batch != nil {
		t.Fatalf("usecase must not see an invalid batch")
	}
}
