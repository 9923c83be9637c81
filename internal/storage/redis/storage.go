package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anvitha1105/Capstone-finalreview/internal/model"
	"github.com/anvitha1105/Capstone-finalreview/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
//
// Users are stored as hashes so the running counters can be incremented
// with HINCRBY; a ZSET mirrors total scores for leaderboard reads, and
// score records live in per-user lists in append order.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) FindUserByID(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.getUser(ctx, id)
}

func (s *Storage) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	id, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return s.getUser(ctx, model.UserID(id))
}

func (s *Storage) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	id, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		id, err = s.client.Get(ctx, emailIndexKey(email)).Result()
	}
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return s.getUser(ctx, model.UserID(id))
}

func (s *Storage) InsertUser(ctx context.Context, user *model.User) error {
	// Claim the unique username and email with SETNX; unwind on conflict
	ok, err := s.client.SetNX(ctx, usernameIndexKey(user.Username), string(user.ID), 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrUserExists
	}

	ok, err = s.client.SetNX(ctx, emailIndexKey(user.Email), string(user.ID), 0).Result()
	if err == nil && !ok {
		err = model.ErrUserExists
	}
	if err != nil {
		_ = s.client.Del(ctx, usernameIndexKey(user.Username)).Err()
		return err
	}

	created, err := s.writeUserIfAbsent(ctx, user)
	if err == nil && !created {
		err = model.ErrUserExists
	}
	if err != nil {
		_ = s.client.Del(ctx, usernameIndexKey(user.Username), emailIndexKey(user.Email)).Err()
		return err
	}
	return nil
}

func (s *Storage) EnsureUser(ctx context.Context, user *model.User) error {
	created, err := s.writeUserIfAbsent(ctx, user)
	if err != nil || !created {
		return err
	}

	// Winner of the race also writes the secondary indexes
	pipe := s.client.Pipeline()
	pipe.SetNX(ctx, usernameIndexKey(user.Username), string(user.ID), 0)
	pipe.SetNX(ctx, emailIndexKey(user.Email), string(user.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

// writeUserIfAbsent claims the user hash via HSETNX on the id field.
// Exactly one concurrent caller wins and fills in the remaining fields.
func (s *Storage) writeUserIfAbsent(ctx context.Context, user *model.User) (bool, error) {
	won, err := s.client.HSetNX(ctx, userKey(user.ID), "id", string(user.ID)).Result()
	if err != nil || !won {
		return false, err
	}

	pipe := s.client.Pipeline()
	pipe.HSet(ctx, userKey(user.ID),
		"username", user.Username,
		"email", user.Email,
		"password_hash", user.PasswordHash,
		"created_at", user.CreatedAt.UTC().Format(time.RFC3339Nano),
		"total_games_played", user.TotalGamesPlayed,
		"total_score", user.TotalScore,
	)
	pipe.ZAdd(ctx, leaderboardKey(), redis.Z{
		Score:  float64(user.TotalScore),
		Member: string(user.ID),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Storage) getUser(ctx context.Context, id model.UserID) (*model.User, error) {
	fields, err := s.client.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, model.ErrUserNotFound
	}
	return userFromHash(fields)
}

func userFromHash(fields map[string]string) (*model.User, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, err
	}
	games, _ := strconv.Atoi(fields["total_games_played"])
	score, _ := strconv.Atoi(fields["total_score"])

	return &model.User{
		ID:               model.UserID(fields["id"]),
		Username:         fields["username"],
		Email:            fields["email"],
		PasswordHash:     fields["password_hash"],
		CreatedAt:        createdAt,
		TotalGamesPlayed: games,
		TotalScore:       score,
	}, nil
}

// Score operations

func (s *Storage) RecordScore(ctx context.Context, record *model.ScoreRecord) error {
	exists, err := s.client.Exists(ctx, userKey(record.UserID)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrUserNotFound
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// MULTI/EXEC keeps the append and the counter increments together
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, userScoresKey(record.UserID), data)
		pipe.HIncrBy(ctx, userKey(record.UserID), "total_games_played", 1)
		pipe.HIncrBy(ctx, userKey(record.UserID), "total_score", int64(record.Score))
		pipe.ZIncrBy(ctx, leaderboardKey(), float64(record.Score), string(record.UserID))
		return nil
	})
	return err
}

func (s *Storage) ListScoresByUser(ctx context.Context, userID model.UserID) ([]*model.ScoreRecord, error) {
	items, err := s.client.LRange(ctx, userScoresKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.ScoreRecord, 0, len(items))
	for _, item := range items {
		var record model.ScoreRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, nil
}

func (s *Storage) ListTopUsers(ctx context.Context, n int, excludeID model.UserID) ([]*model.User, error) {
	// Fetch one extra in case the excluded id ranks in the top n
	ids, err := s.client.ZRevRange(ctx, leaderboardKey(), 0, int64(n)).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, n)
	for _, id := range ids {
		if model.UserID(id) == excludeID {
			continue
		}
		if len(users) == n {
			break
		}
		user, err := s.getUser(ctx, model.UserID(id))
		if err != nil {
			if errors.Is(err, model.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// Challenge operations

func (s *Storage) SaveChallenge(ctx context.Context, challenge *model.Challenge) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, challengeKey(challenge.ID), data, s.cfg.ChallengeTTL).Err()
}

func (s *Storage) GetChallenge(ctx context.Context, id string) (*model.Challenge, error) {
	data, err := s.client.Get(ctx, challengeKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrChallengeNotFound
		}
		return nil, err
	}

	var challenge model.Challenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}
