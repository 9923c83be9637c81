package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/clock"
	"github.com/anvitha1105/Capstone-finalreview/internal/model"
	"github.com/anvitha1105/Capstone-finalreview/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	clock        clock.Clock
	challengeTTL time.Duration

	users         map[model.UserID]*model.User
	userOrder     []model.UserID // insertion order, for stable leaderboard ties
	usernameIndex map[string]model.UserID
	emailIndex    map[string]model.UserID
	scores        map[model.UserID][]*model.ScoreRecord
	challenges    map[string]*model.Challenge
}

// New creates a new in-memory storage instance. Challenges older than
// challengeTTL (measured against clk) are dropped on write and read.
func New(clk clock.Clock, challengeTTL time.Duration) *Storage {
	return &Storage{
		clock:         clk,
		challengeTTL:  challengeTTL,
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		emailIndex:    make(map[string]model.UserID),
		scores:        make(map[model.UserID][]*model.ScoreRecord),
		challenges:    make(map[string]*model.Challenge),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) FindUserByID(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (s *Storage) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return copyUser(s.users[id]), nil
}

func (s *Storage) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.usernameIndex[username]; ok {
		return copyUser(s.users[id]), nil
	}
	if id, ok := s.emailIndex[email]; ok {
		return copyUser(s.users[id]), nil
	}
	return nil, model.ErrUserNotFound
}

func (s *Storage) InsertUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return model.ErrUserExists
	}
	if _, ok := s.usernameIndex[user.Username]; ok {
		return model.ErrUserExists
	}
	if _, ok := s.emailIndex[user.Email]; ok {
		return model.ErrUserExists
	}

	s.insertLocked(user)
	return nil
}

func (s *Storage) EnsureUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Insert-if-absent keyed on id; an existing record is left untouched
	if _, ok := s.users[user.ID]; ok {
		return nil
	}

	s.insertLocked(user)
	return nil
}

func (s *Storage) insertLocked(user *model.User) {
	stored := copyUser(user)
	s.users[stored.ID] = stored
	s.userOrder = append(s.userOrder, stored.ID)
	s.usernameIndex[stored.Username] = stored.ID
	s.emailIndex[stored.Email] = stored.ID
}

// Score operations

func (s *Storage) RecordScore(ctx context.Context, record *model.ScoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[record.UserID]
	if !ok {
		return model.ErrUserNotFound
	}

	// Append and increment under one lock acquisition, so the record and
	// the counter update are applied together or not at all
	stored := *record
	s.scores[record.UserID] = append(s.scores[record.UserID], &stored)
	user.TotalGamesPlayed++
	user.TotalScore += record.Score
	return nil
}

func (s *Storage) ListScoresByUser(ctx context.Context, userID model.UserID) ([]*model.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.scores[userID]
	out := make([]*model.ScoreRecord, len(records))
	for i, r := range records {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

func (s *Storage) ListTopUsers(ctx context.Context, n int, excludeID model.UserID) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ranked := make([]*model.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		if id == excludeID {
			continue
		}
		ranked = append(ranked, copyUser(s.users[id]))
	}

	// Stable sort keeps insertion order for equal scores
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Challenge operations

func (s *Storage) SaveChallenge(ctx context.Context, challenge *model.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepChallengesLocked()
	stored := *challenge
	s.challenges[challenge.ID] = &stored
	return nil
}

func (s *Storage) GetChallenge(ctx context.Context, id string) (*model.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	challenge, ok := s.challenges[id]
	if !ok {
		return nil, model.ErrChallengeNotFound
	}
	if s.expiredLocked(challenge) {
		delete(s.challenges, id)
		return nil, model.ErrChallengeNotFound
	}
	cp := *challenge
	return &cp, nil
}

// sweepChallengesLocked drops expired challenges so abandoned rounds do
// not accumulate. Expired records a caller never revisits are reclaimed
// on the next write.
func (s *Storage) sweepChallengesLocked() {
	for id, c := range s.challenges {
		if s.expiredLocked(c) {
			delete(s.challenges, id)
		}
	}
}

func (s *Storage) expiredLocked(c *model.Challenge) bool {
	return s.clock.Now().Sub(c.CreatedAt) > s.challengeTTL
}

func copyUser(u *model.User) *model.User {
	cp := *u
	return &cp
}
