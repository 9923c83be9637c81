package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/clock"
	"github.com/anvitha1105/Capstone-finalreview/internal/model"
	"github.com/anvitha1105/Capstone-finalreview/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownSubject     = errors.New("token subject not found")
)

// Session binds a signed token to the identity it was issued for
type Session struct {
	Token string
	User  model.User
}

// Service resolves caller identity and handles registration and login.
//
// Every other component is gated on Resolve: it either returns an
// authoritative user record read fresh from storage, or a typed failure.
type Service struct {
	storage storage.Storage
	codec   *TokenCodec
	clock   clock.Clock
	logger  *slog.Logger

	bcryptCost int
}

// Config holds configuration for the auth service
type Config struct {
	// TokenSecret signs session tokens. Required outside tests.
	TokenSecret []byte
	// SessionDuration bounds token validity; defaults to 24h.
	SessionDuration time.Duration
	// BcryptCost tunes password hashing work; defaults to bcrypt.DefaultCost.
	BcryptCost int
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
		BcryptCost:      bcrypt.DefaultCost,
	}
}

// New creates a new auth Service
func New(store storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		storage:    store,
		codec:      NewTokenCodec(cfg.TokenSecret, cfg.SessionDuration, clk),
		clock:      clk,
		logger:     logger,
		bcryptCost: cfg.BcryptCost,
	}
}

// Resolve returns the authoritative identity for a presented token.
//
// An empty token resolves to the shared guest identity, provisioning it
// on first access. Provisioning is idempotent: the storage layer's
// insert-if-absent primitive guarantees a single record for the reserved
// id even under concurrent first access.
func (s *Service) Resolve(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return s.resolveGuest(ctx)
	}

	claims, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	// Counters and profile fields are always read fresh from storage,
	// never trusted from the token
	user, err := s.storage.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrUnknownSubject
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) resolveGuest(ctx context.Context) (*model.User, error) {
	guest := model.NewGuestUser(s.clock.Now().UTC())
	if err := s.storage.EnsureUser(ctx, guest); err != nil {
		return nil, err
	}
	return s.storage.FindUserByID(ctx, model.GuestUserID)
}

// Register creates a new account and issues a session token for it
func (s *Service) Register(ctx context.Context, username, email, password string) (*Session, error) {
	_, err := s.storage.FindUserByUsernameOrEmail(ctx, username, email)
	if err == nil {
		return nil, model.ErrUserExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           model.UserID(uuid.NewString()),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now().UTC(),
	}

	if err := s.storage.InsertUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", slog.String("user_id", string(user.ID)))

	return s.createSession(user)
}

// Login authenticates a registered user and issues a session token.
// An unknown username and a wrong password fail identically, so the
// response carries no username-enumeration signal.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.storage.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(user)
}

func (s *Service) createSession(user *model.User) (*Session, error) {
	token, err := s.codec.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token: token,
		User:  *user,
	}, nil
}
