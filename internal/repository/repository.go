package repository

import (
	"context"

	"academiafit/gym-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// WorkoutRepository is the store for workouts. Any durable keyed store can
// satisfy it as long as BatchUpdateDays is atomic.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	// Delete removes a workout, filtered by owner so a caller can never
	// delete across owners.
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error
	// BatchUpdateDays applies a set of day-of-week changes atomically:
	// either every update lands or none does. Schedule swaps depend on this.
	BatchUpdateDays(ctx context.Context, updates []domain.DayUpdate) error
}

// HistoryRepository stores finished-session records. History is append-only:
// records are written once and never updated.
type HistoryRepository interface {
	Create(ctx context.Context, history *domain.WorkoutHistory) (primitive.ObjectID, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.WorkoutHistory, error)
}
