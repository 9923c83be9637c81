package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/mocks"
	"github.com/anvitha1105/Capstone-finalreview/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	clock   *mocks.MockClock
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.storage = New(s.clock, time.Hour)
	s.ctx = context.Background()
}

func (s *StorageSuite) user(id, username, email string) *model.User {
	return &model.User{
		ID:        model.UserID(id),
		Username:  username,
		Email:     email,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// User tests

func (s *StorageSuite) TestInsertAndFindUser() {
	err := s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))
	s.Require().NoError(err)

	byID, err := s.storage.FindUserByID(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal("alice", byID.Username)

	byName, err := s.storage.FindUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("u1"), byName.ID)
}

func (s *StorageSuite) TestFindUserByIDNotFound() {
	_, err := s.storage.FindUserByID(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestInsertUserDuplicateUsername() {
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))

	err := s.storage.InsertUser(s.ctx, s.user("u2", "alice", "other@example.com"))
	s.ErrorIs(err, model.ErrUserExists)
}

func (s *StorageSuite) TestInsertUserDuplicateEmail() {
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))

	err := s.storage.InsertUser(s.ctx, s.user("u2", "bob", "alice@example.com"))
	s.ErrorIs(err, model.ErrUserExists)
}

func (s *StorageSuite) TestFindUserByUsernameOrEmail() {
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))

	byName, err := s.storage.FindUserByUsernameOrEmail(s.ctx, "alice", "nobody@example.com")
	s.Require().NoError(err)
	s.Equal(model.UserID("u1"), byName.ID)

	byEmail, err := s.storage.FindUserByUsernameOrEmail(s.ctx, "nobody", "alice@example.com")
	s.Require().NoError(err)
	s.Equal(model.UserID("u1"), byEmail.ID)

	_, err = s.storage.FindUserByUsernameOrEmail(s.ctx, "nobody", "nobody@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestEnsureUserDoesNotOverwrite() {
	guest := model.NewGuestUser(time.Now())
	s.Require().NoError(s.storage.EnsureUser(s.ctx, guest))

	record := &model.ScoreRecord{ID: "r1", UserID: model.GuestUserID, GameType: model.GameAIImage, Score: 10}
	s.Require().NoError(s.storage.RecordScore(s.ctx, record))

	// A second Ensure must not reset the counters
	s.Require().NoError(s.storage.EnsureUser(s.ctx, model.NewGuestUser(time.Now())))

	stored, err := s.storage.FindUserByID(s.ctx, model.GuestUserID)
	s.Require().NoError(err)
	s.Equal(1, stored.TotalGamesPlayed)
	s.Equal(10, stored.TotalScore)
}

func (s *StorageSuite) TestEnsureUserConcurrent() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.storage.EnsureUser(s.ctx, model.NewGuestUser(time.Now()))
		}()
	}
	wg.Wait()

	top, err := s.storage.ListTopUsers(s.ctx, 100, "")
	s.Require().NoError(err)
	s.Len(top, 1)
}

// Score tests

func (s *StorageSuite) TestRecordScoreUpdatesCounters() {
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))

	for _, score := range []int{100, 250, 50} {
		err := s.storage.RecordScore(s.ctx, &model.ScoreRecord{
			ID:       "r" + string(rune('0'+score%10)),
			UserID:   "u1",
			GameType: model.GameAIImage,
			Score:    score,
		})
		s.Require().NoError(err)
	}

	user, err := s.storage.FindUserByID(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal(3, user.TotalGamesPlayed)
	s.Equal(400, user.TotalScore)

	records, err := s.storage.ListScoresByUser(s.ctx, "u1")
	s.Require().NoError(err)
	s.Len(records, 3)
}

func (s *StorageSuite) TestRecordScoreUnknownUser() {
	err := s.storage.RecordScore(s.ctx, &model.ScoreRecord{ID: "r1", UserID: "ghost", Score: 5})
	s.ErrorIs(err, model.ErrUserNotFound)

	records, err := s.storage.ListScoresByUser(s.ctx, "ghost")
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *StorageSuite) TestRecordScoreConcurrentIncrements() {
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{
				UserID: "u1",
				Score:  1,
			})
		}(i)
	}
	wg.Wait()

	user, err := s.storage.FindUserByID(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal(20, user.TotalGamesPlayed)
	s.Equal(20, user.TotalScore)
}

// Leaderboard tests

func (s *StorageSuite) TestListTopUsersOrdersAndExcludes() {
	_ = s.storage.EnsureUser(s.ctx, model.NewGuestUser(time.Now()))
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))
	_ = s.storage.InsertUser(s.ctx, s.user("u2", "bob", "bob@example.com"))
	_ = s.storage.InsertUser(s.ctx, s.user("u3", "carol", "carol@example.com"))

	_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{UserID: "u1", Score: 50})
	_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{UserID: "u2", Score: 200})
	_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{UserID: model.GuestUserID, Score: 999})

	top, err := s.storage.ListTopUsers(s.ctx, 10, model.GuestUserID)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal(model.UserID("u2"), top[0].ID)
	s.Equal(model.UserID("u1"), top[1].ID)
	s.Equal(model.UserID("u3"), top[2].ID)
}

func (s *StorageSuite) TestListTopUsersTieKeepsInsertionOrder() {
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))
	_ = s.storage.InsertUser(s.ctx, s.user("u2", "bob", "bob@example.com"))

	_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{UserID: "u1", Score: 100})
	_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{UserID: "u2", Score: 100})

	top, err := s.storage.ListTopUsers(s.ctx, 10, model.GuestUserID)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(model.UserID("u1"), top[0].ID)
	s.Equal(model.UserID("u2"), top[1].ID)
}

func (s *StorageSuite) TestListTopUsersLimit() {
	for i := 0; i < 15; i++ {
		u := s.user("u"+string(rune('a'+i)), "user"+string(rune('a'+i)), "u"+string(rune('a'+i))+"@example.com")
		_ = s.storage.InsertUser(s.ctx, u)
	}

	top, err := s.storage.ListTopUsers(s.ctx, 10, model.GuestUserID)
	s.Require().NoError(err)
	s.Len(top, 10)
}

// Challenge tests

func (s *StorageSuite) challenge(id string) *model.Challenge {
	return &model.Challenge{
		ID:        id,
		GameType:  model.GameLogicalReasoning,
		Answer:    `{"answer":42}`,
		CreatedAt: s.clock.Now(),
	}
}

func (s *StorageSuite) TestSaveAndGetChallenge() {
	challenge := s.challenge("c1")
	s.Require().NoError(s.storage.SaveChallenge(s.ctx, challenge))

	stored, err := s.storage.GetChallenge(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal(challenge.Answer, stored.Answer)
}

func (s *StorageSuite) TestGetChallengeNotFound() {
	_, err := s.storage.GetChallenge(s.ctx, "missing")
	s.ErrorIs(err, model.ErrChallengeNotFound)
}

func (s *StorageSuite) TestChallengeExpiresAfterTTL() {
	s.Require().NoError(s.storage.SaveChallenge(s.ctx, s.challenge("c1")))

	s.clock.Advance(59 * time.Minute)
	_, err := s.storage.GetChallenge(s.ctx, "c1")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)
	_, err = s.storage.GetChallenge(s.ctx, "c1")
	s.ErrorIs(err, model.ErrChallengeNotFound)
}

func (s *StorageSuite) TestSaveChallengeSweepsExpiredRecords() {
	s.Require().NoError(s.storage.SaveChallenge(s.ctx, s.challenge("old")))

	s.clock.Advance(2 * time.Hour)
	s.Require().NoError(s.storage.SaveChallenge(s.ctx, s.challenge("fresh")))

	s.storage.mu.RLock()
	defer s.storage.mu.RUnlock()
	s.NotContains(s.storage.challenges, "old")
	s.Contains(s.storage.challenges, "fresh")
}
