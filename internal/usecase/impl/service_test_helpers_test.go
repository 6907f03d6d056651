package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/domain/repository"
	"sprout/internal/infra/auth"
)

// memUserRepo is an in-memory UserRepository used by the service tests. It
// mirrors the document store's semantics: unique email, whole-aggregate
// writes, copies handed out so callers never alias stored state.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User

	failWith error // when set, every operation fails with this error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if _, exists := r.users[user.Email]; exists {
		return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	r.users[user.Email] = cloneUser(user)

	return nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *memUserRepo) UpdateFullName(_ context.Context, email, fullName string) (*entity.User, error) {
	return r.update(email, func(u *entity.User) { u.FullName = fullName })
}

func (r *memUserRepo) UpdatePassword(_ context.Context, email, passwordHash string) (*entity.User, error) {
	return r.update(email, func(u *entity.User) { u.PasswordHash = passwordHash })
}

func (r *memUserRepo) ReplacePlants(_ context.Context, email string, plants []entity.Plant) (*entity.User, error) {
	return r.update(email, func(u *entity.User) { u.Plants = append([]entity.Plant(nil), plants...) })
}

func (r *memUserRepo) update(email string, apply func(*entity.User)) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	apply(user)

	return cloneUser(user), nil
}

// storedHash reads the persisted password hash directly, bypassing the
// repository interface, so tests can assert it did or did not change.
func (r *memUserRepo) storedHash(email string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[email]; ok {
		return user.PasswordHash
	}

	return ""
}

func cloneUser(u *entity.User) *entity.User {
	clone := *u
	clone.Plants = append([]entity.Plant(nil), u.Plants...)

	return &clone
}

// testServices wires real services against the in-memory repository and a
// low-cost bcrypt hasher.
type testServices struct {
	repo   *memUserRepo
	auth   *authService
	plants *plantService
}

func newTestServices() testServices {
	repo := newMemUserRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	return testServices{
		repo:   repo,
		auth:   NewAuthService(repo, hasher, logger).(*authService),
		plants: NewPlantService(repo, logger).(*plantService),
	}
}
