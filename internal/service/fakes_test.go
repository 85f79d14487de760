package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/crucial707/blog-api/internal/models"
	"github.com/crucial707/blog-api/internal/repo"
)

// memUsers enforces email uniqueness on insert the way the unique index does.
type memUsers struct {
	mu        sync.Mutex
	byEmail   map[string]*models.User
	existsErr error
	createErr error
	// skipExists makes ExistsByEmail always answer false, so only Create can reject duplicates.
	skipExists bool
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: make(map[string]*models.User)}
}

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return repo.ErrDuplicate
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	cp := *u
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	if m.skipExists {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byEmail[email]
	return ok, nil
}

type memPosts struct {
	mu        sync.Mutex
	byID      map[string]*models.Post
	updates   int
	deletes   int
	getErr    error
	deleteErr error
}

func newMemPosts() *memPosts {
	return &memPosts{byID: make(map[string]*models.Post)}
}

func (m *memPosts) Create(_ context.Context, p *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memPosts) GetByID(_ context.Context, id string) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memPosts) Update(_ context.Context, p *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[p.ID]; !ok {
		return repo.ErrNotFound
	}
	m.updates++
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memPosts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.byID[id]; !ok {
		return repo.ErrNotFound
	}
	m.deletes++
	delete(m.byID, id)
	return nil
}

var errBoom = errors.New("boom")
