package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/anvitha1105/Capstone-finalreview/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.ChallengeTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
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

	user, err := s.storage.FindUserByID(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
	s.Equal("alice@example.com", user.Email)
	s.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), user.CreatedAt)
}

func (s *StorageSuite) TestFindUserByIDNotFound() {
	_, err := s.storage.FindUserByID(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestInsertUserDuplicateUsername() {
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))

	err := s.storage.InsertUser(s.ctx, s.user("u2", "alice", "other@example.com"))
	s.ErrorIs(err, model.ErrUserExists)

	// The losing insert must not leave partial index entries behind
	_, err = s.storage.FindUserByUsernameOrEmail(s.ctx, "nobody", "other@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestInsertUserDuplicateEmail() {
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))

	err := s.storage.InsertUser(s.ctx, s.user("u2", "bob", "alice@example.com"))
	s.ErrorIs(err, model.ErrUserExists)
}

func (s *StorageSuite) TestFindUserByUsername() {
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))

	user, err := s.storage.FindUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("u1"), user.ID)

	_, err = s.storage.FindUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestEnsureUserIsIdempotent() {
	guest := model.NewGuestUser(time.Now().UTC())
	s.Require().NoError(s.storage.EnsureUser(s.ctx, guest))

	_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{ID: "r1", UserID: model.GuestUserID, Score: 7})

	s.Require().NoError(s.storage.EnsureUser(s.ctx, model.NewGuestUser(time.Now().UTC())))

	stored, err := s.storage.FindUserByID(s.ctx, model.GuestUserID)
	s.Require().NoError(err)
	s.Equal(1, stored.TotalGamesPlayed)
	s.Equal(7, stored.TotalScore)
}

// Score tests

func (s *StorageSuite) TestRecordScoreUpdatesCounters() {
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))

	err := s.storage.RecordScore(s.ctx, &model.ScoreRecord{
		ID:        "r1",
		UserID:    "u1",
		GameType:  model.GameAIImage,
		Score:     120,
		Accuracy:  66.7,
		TimeTaken: 12,
		Timestamp: time.Now().UTC(),
	})
	s.Require().NoError(err)

	user, err := s.storage.FindUserByID(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal(1, user.TotalGamesPlayed)
	s.Equal(120, user.TotalScore)

	records, err := s.storage.ListScoresByUser(s.ctx, "u1")
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(model.GameAIImage, records[0].GameType)
	s.Equal(120, records[0].Score)
}

func (s *StorageSuite) TestRecordScoreUnknownUser() {
	err := s.storage.RecordScore(s.ctx, &model.ScoreRecord{ID: "r1", UserID: "ghost", Score: 5})
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestListScoresPreservesAppendOrder() {
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))

	for i, score := range []int{10, 20, 30} {
		_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{
			ID:     "r" + string(rune('1'+i)),
			UserID: "u1",
			Score:  score,
		})
	}

	records, err := s.storage.ListScoresByUser(s.ctx, "u1")
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal(10, records[0].Score)
	s.Equal(30, records[2].Score)
}

// Leaderboard tests

func (s *StorageSuite) TestListTopUsersOrdersAndExcludes() {
	_ = s.storage.EnsureUser(s.ctx, model.NewGuestUser(time.Now().UTC()))
	_ = s.storage.InsertUser(s.ctx, s.user("u1", "alice", "alice@example.com"))
	_ = s.storage.InsertUser(s.ctx, s.user("u2", "bob", "bob@example.com"))

	_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{ID: "r1", UserID: "u1", Score: 50})
	_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{ID: "r2", UserID: "u2", Score: 200})
	_ = s.storage.RecordScore(s.ctx, &model.ScoreRecord{ID: "r3", UserID: model.GuestUserID, Score: 999})

	top, err := s.storage.ListTopUsers(s.ctx, 10, model.GuestUserID)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(model.UserID("u2"), top[0].ID)
	s.Equal(model.UserID("u1"), top[1].ID)
}

// Challenge tests

func (s *StorageSuite) TestSaveAndGetChallenge() {
	challenge := &model.Challenge{
		ID:        "c1",
		GameType:  model.GameLogicalReasoning,
		Answer:    `{"answer":96}`,
		CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.storage.SaveChallenge(s.ctx, challenge))

	stored, err := s.storage.GetChallenge(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal(challenge.Answer, stored.Answer)
	s.Equal(model.GameLogicalReasoning, stored.GameType)
}

func (s *StorageSuite) TestChallengeExpires() {
	challenge := &model.Challenge{ID: "c1", GameType: model.GameLogicalReasoning, Answer: `{"answer":1}`}
	s.Require().NoError(s.storage.SaveChallenge(s.ctx, challenge))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetChallenge(s.ctx, "c1")
	s.ErrorIs(err, model.ErrChallengeNotFound)
}

func (s *StorageSuite) TestGetChallengeNotFound() {
	_, err := s.storage.GetChallenge(s.ctx, "missing")
	s.ErrorIs(err, model.ErrChallengeNotFound)
}
