package users

import (
	"context"
	"sync"

	"wallmagic/internal/common"
	"wallmagic/internal/server/models"
)

var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository is a Repository backed by process memory. It serves tests
// and the no-database mode. Safe for concurrent use.
type MemoryRepository struct {
	mu         sync.Mutex
	nextID     int64
	byEmail    map[string]*models.User
	byUsername map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail:    make(map[string]*models.User),
		byUsername: make(map[string]*models.User),
	}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrEmailTaken
	}
	if _, ok := r.byUsername[user.Username]; ok {
		return nil, common.ErrUsernameTaken
	}

	r.nextID++
	stored := cloneUser(user)
	stored.ID = r.nextID
	r.byEmail[stored.Email] = stored
	r.byUsername[stored.Username] = stored

	return cloneUser(stored), nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneUser(u), nil
}

func (r *MemoryRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byUsername[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneUser(u), nil
}

// cloneUser returns a copy detached from stored state.
func cloneUser(u *models.User) *models.User {
	out := *u
	if u.FullName != nil {
		name := *u.FullName
		out.FullName = &name
	}
	return &out
}
