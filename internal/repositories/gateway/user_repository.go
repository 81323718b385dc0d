package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
)

const usersCollection = "users"

// userRepository stores users in the gateway's users collection.
type userRepository struct {
	store CollectionStore
}

// NewUserRepository creates a gateway-backed user repository.
func NewUserRepository(store CollectionStore) portsrepo.UserRepositoryFacade {
	return &userRepository{store: store}
}

var _ portsrepo.UserRepositoryFacade = (*userRepository)(nil)

func (r *userRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.store.GetCollection(ctx, usersCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, func(u domain.User) bool { return u.UserID == userID })
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, func(u domain.User) bool { return strings.EqualFold(u.Username, username) })
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, func(u domain.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *userRepository) SaveUser(ctx context.Context, user domain.User) error {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, existing := range users {
		if existing.UserID == user.UserID {
			return apperrors.ErrDuplicate
		}
	}
	users = append(users, user)
	return r.store.ReplaceCollection(ctx, usersCollection, users)
}

func (r *userRepository) UpdateUser(ctx context.Context, user domain.User) error {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return err
	}
	for idx := range users {
		if users[idx].UserID == user.UserID {
			users[idx] = user
			return r.store.ReplaceCollection(ctx, usersCollection, users)
		}
	}
	return apperrors.ErrNotFound
}

func (r *userRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return err
	}
	for idx := range users {
		if users[idx].UserID == userID {
			users[idx].DeletedAt = &deletedAt
			users[idx].IsActive = false
			users[idx].LastUpdatedAt = deletedAt
			users[idx].LastUpdatedBy = deletedBy
			return r.store.ReplaceCollection(ctx, usersCollection, users)
		}
	}
	return apperrors.ErrNotFound
}

func (r *userRepository) findUser(ctx context.Context, match func(domain.User) bool) (*domain.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for idx := range users {
		if match(users[idx]) {
			return &users[idx], nil
		}
	}
	return nil, apperrors.ErrNotFound
}
