package usecase

import (
	"context"
	"sync"

	"jobswipe/internal/domain/job"
	"jobswipe/internal/domain/swipe"
	"jobswipe/internal/domain/user"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
	err   error

	lastUpdate user.Update
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return user.User{}, m.err
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return user.User{}, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) Update(_ context.Context, id uuid.UUID, upd user.Update) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUpdate = upd
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Skills != nil {
		u.Skills = *upd.Skills
	}
	m.users[id] = u
	return u, nil
}

func (m *mockUserRepo) UpdatePreferences(_ context.Context, id uuid.UUID, prefs user.Preferences) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	u.Preferences = prefs
	m.users[id] = u
	return u, nil
}

type mockSwipeRepo struct {
	mu     sync.Mutex
	byPair map[[2]uuid.UUID]swipe.Swipe
	err    error
}

func newMockSwipeRepo() *mockSwipeRepo {
	return &mockSwipeRepo{byPair: map[[2]uuid.UUID]swipe.Swipe{}}
}

func (m *mockSwipeRepo) upsert(s swipe.Swipe) (swipe.Swipe, bool) {
	key := [2]uuid.UUID{s.UserID, s.JobID}
	if existing, ok := m.byPair[key]; ok {
		existing.Action = s.Action
		m.byPair[key] = existing
		return existing, false
	}
	s.ID = uuid.New()
	m.byPair[key] = s
	return s, true
}

func (m *mockSwipeRepo) Upsert(_ context.Context, s swipe.Swipe) (swipe.Swipe, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return swipe.Swipe{}, false, m.err
	}
	out, inserted := m.upsert(s)
	return out, inserted, nil
}

func (m *mockSwipeRepo) UpsertBatch(_ context.Context, items []swipe.Swipe) (swipe.BatchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return swipe.BatchResult{}, m.err
	}
	var res swipe.BatchResult
	for _, it := range items {
		if _, inserted := m.upsert(it); inserted {
			res.Inserted++
		} else {
			res.Updated++
		}
	}
	return res, nil
}

func (m *mockSwipeRepo) UpdateAction(_ context.Context, id uuid.UUID, action swipe.Action) (swipe.Swipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, s := range m.byPair {
		if s.ID == id {
			s.Action = action
			m.byPair[k] = s
			return s, nil
		}
	}
	return swipe.Swipe{}, swipe.ErrNotFound
}

func (m *mockSwipeRepo) ListByUser(_ context.Context, userID uuid.UUID, _ int) ([]swipe.Swipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]swipe.Swipe, 0)
	for _, s := range m.byPair {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type mockJobRepo struct {
	jobs map[uuid.UUID]job.Job
	err  error

	lastLimit, lastOffset int
	lastUpdate            job.Update
}

func newMockJobRepo(jobs ...job.Job) *mockJobRepo {
	m := &mockJobRepo{jobs: map[uuid.UUID]job.Job{}}
	for _, j := range jobs {
		m.jobs[j.ID] = j
	}
	return m
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	j.ID = uuid.New()
	m.jobs[j.ID] = j
	return j, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) List(_ context.Context, limit, offset int) ([]job.Job, error) {
	m.lastLimit, m.lastOffset = limit, offset
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (m *mockJobRepo) Update(_ context.Context, id uuid.UUID, upd job.Update) (job.Job, error) {
	m.lastUpdate = upd
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	if upd.Title != nil {
		j.Title = *upd.Title
	}
	if upd.SkillsRequired != nil {
		j.SkillsRequired = *upd.SkillsRequired
	}
	m.jobs[id] = j
	return j, nil
}

func (m *mockJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.jobs[id]; !ok {
		return job.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

type recordingInvalidator struct {
	mu   sync.Mutex
	jobs []uuid.UUID
}

func (r *recordingInvalidator) InvalidateJob(_ context.Context, jobID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, jobID)
	return nil
}
