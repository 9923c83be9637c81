package storage

import (
	"context"

	"github.com/anvitha1105/Capstone-finalreview/internal/model"
)

// Storage defines the interface for data persistence.
//
// The store is the only shared mutable resource in the system and is the
// transaction boundary: RecordScore applies the score append and the
// owner's counter increments as one atomic step, and EnsureUser provides
// the insert-if-absent primitive that guest provisioning relies on.
type Storage interface {
	// User operations
	FindUserByID(ctx context.Context, id model.UserID) (*model.User, error)
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)

	// InsertUser stores a new user. It fails with model.ErrUserExists if
	// the id, username or email is already taken.
	InsertUser(ctx context.Context, user *model.User) error

	// EnsureUser inserts the user only if no record with its id exists.
	// Concurrent callers racing on the same id produce exactly one record;
	// an existing record is never overwritten.
	EnsureUser(ctx context.Context, user *model.User) error

	// Score operations

	// RecordScore appends an immutable score record and increments the
	// owning user's total_games_played by 1 and total_score by the
	// record's score, atomically: either both happen or neither does.
	// Fails with model.ErrUserNotFound if the owner is absent.
	RecordScore(ctx context.Context, record *model.ScoreRecord) error

	ListScoresByUser(ctx context.Context, userID model.UserID) ([]*model.ScoreRecord, error)

	// ListTopUsers returns at most n users ordered by descending
	// TotalScore, excluding excludeID. Ties keep insertion order.
	ListTopUsers(ctx context.Context, n int, excludeID model.UserID) ([]*model.User, error)

	// Challenge operations
	SaveChallenge(ctx context.Context, challenge *model.Challenge) error
	GetChallenge(ctx context.Context, id string) (*model.Challenge, error)
}
