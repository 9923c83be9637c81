package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/mocks"
	"github.com/anvitha1105/Capstone-finalreview/internal/model"
	"github.com/anvitha1105/Capstone-finalreview/internal/storage/memory"
	"github.com/anvitha1105/Capstone-finalreview/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.storage = memory.New(s.clock, time.Hour)

	cfg := DefaultConfig()
	cfg.TokenSecret = []byte("test-secret")
	cfg.BcryptCost = 4 // keep hashing fast in tests

	s.service = New(s.storage, s.clock, cfg, testutil.NopLogger())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	session, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice", session.User.Username)
	s.NotEqual(model.GuestUserID, session.User.ID)
}

func (s *ServiceSuite) TestRegisterStoresHashedPassword() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "password123")

	user, err := s.storage.FindUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.NotEmpty(user.PasswordHash)
	s.NotEqual("password123", user.PasswordHash)
}

func (s *ServiceSuite) TestRegisterTokenSubjectMatchesIdentity() {
	session, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	claims, err := s.service.codec.Decode(session.Token)
	s.Require().NoError(err)
	s.Equal(session.User.ID, claims.UserID)
	s.Equal("alice", claims.Username)
}

func (s *ServiceSuite) TestRegisterDuplicateUsername() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "password123")

	_, err := s.service.Register(s.ctx, "alice", "other@example.com", "different")
	s.ErrorIs(err, model.ErrUserExists)
}

func (s *ServiceSuite) TestRegisterDuplicateEmail() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "password123")

	_, err := s.service.Register(s.ctx, "bob", "alice@example.com", "different")
	s.ErrorIs(err, model.ErrUserExists)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	registered, _ := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")

	session, err := s.service.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)
	s.NotEmpty(session.Token)
	s.Equal(registered.User.ID, session.User.ID)
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "password123")

	_, err := s.service.Login(s.ctx, "alice", "wrongpassword")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownUsername() {
	_, err := s.service.Login(s.ctx, "nobody", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginGuestUsernameFails() {
	// The guest record has an empty password hash; it must never be
	// reachable through login
	_, err := s.service.Resolve(s.ctx, "")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "Guest", "")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Resolve tests

func (s *ServiceSuite) TestResolveEmptyTokenReturnsGuest() {
	user, err := s.service.Resolve(s.ctx, "")
	s.Require().NoError(err)
	s.Equal(model.GuestUserID, user.ID)
	s.True(user.IsGuest())
	s.Empty(user.PasswordHash)
}

func (s *ServiceSuite) TestResolveGuestProvisioningIsIdempotent() {
	first, err := s.service.Resolve(s.ctx, "")
	s.Require().NoError(err)

	_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{UserID: model.GuestUserID, Score: 5})

	second, err := s.service.Resolve(s.ctx, "")
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal(1, second.TotalGamesPlayed)
}

func (s *ServiceSuite) TestResolveGuestConcurrent() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.service.Resolve(s.ctx, "")
		}()
	}
	wg.Wait()

	top, err := s.storage.ListTopUsers(s.ctx, 100, "")
	s.Require().NoError(err)
	s.Len(top, 1)
}

func (s *ServiceSuite) TestResolveValidToken() {
	session, _ := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")

	user, err := s.service.Resolve(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(session.User.ID, user.ID)
}

func (s *ServiceSuite) TestResolveReadsCountersFromStorage() {
	session, _ := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")

	_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{UserID: session.User.ID, Score: 42})

	user, err := s.service.Resolve(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(1, user.TotalGamesPlayed)
	s.Equal(42, user.TotalScore)
}

func (s *ServiceSuite) TestResolveMalformedToken() {
	_, err := s.service.Resolve(s.ctx, "not-a-jwt")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestResolveTamperedToken() {
	session, _ := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")

	tampered := session.Token[:len(session.Token)-2] + "xx"
	_, err := s.service.Resolve(s.ctx, tampered)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestResolveExpiredToken() {
	session, _ := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.Resolve(s.ctx, session.Token)
	s.ErrorIs(err, ErrTokenExpired)
}

func (s *ServiceSuite) TestResolveUnknownSubject() {
	// A well-formed token whose subject was never stored
	token, err := s.service.codec.Issue("missing-user", "ghost")
	s.Require().NoError(err)

	_, err = s.service.Resolve(s.ctx, token)
	s.ErrorIs(err, ErrUnknownSubject)
}
