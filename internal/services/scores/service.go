package scores

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/clock"
	"github.com/anvitha1105/Capstone-finalreview/internal/model"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/baseline"
	"github.com/anvitha1105/Capstone-finalreview/internal/storage"
)

// maxLeaderboardEntries bounds the human leaderboard section
const maxLeaderboardEntries = 10

// Service records completed attempts and aggregates them into per-user
// statistics and the leaderboard
type Service struct {
	storage   storage.Storage
	baselines *baseline.Comparator
	clock     clock.Clock
	logger    *slog.Logger
}

// New creates a new scores Service
func New(store storage.Storage, baselines *baseline.Comparator, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:   store,
		baselines: baselines,
		clock:     clk,
		logger:    logger,
	}
}

// Submission is one completed attempt as reported by the player
type Submission struct {
	GameType  model.GameType
	Score     int
	Accuracy  float64
	TimeTaken int
}

// Receipt is the outcome of recording a submission, including the AI
// baseline snapshot the attempt was measured against
type Receipt struct {
	ScoreID    string        `json:"score_id"`
	Score      int           `json:"score"`
	Accuracy   float64       `json:"accuracy"`
	AIScore    int           `json:"ai_score"`
	AIAccuracy float64       `json:"ai_accuracy"`
	BeatAI     bool          `json:"beat_ai"`
	Verdict    model.Verdict `json:"verdict"`
}

// Submit validates a submission, snapshots the AI baseline comparison,
// and records the attempt. The write also bumps the owner's lifetime
// counters, so a recorded score and its counters never diverge.
func (s *Service) Submit(ctx context.Context, userID model.UserID, sub Submission) (*Receipt, error) {
	if err := validate(sub); err != nil {
		return nil, err
	}

	aiScore, verdict := s.baselines.Compare(sub.GameType, sub.Score)
	b := s.baselines.Lookup(sub.GameType)

	record := &model.ScoreRecord{
		ID:                 uuid.NewString(),
		UserID:             userID,
		GameType:           sub.GameType,
		Score:              sub.Score,
		Accuracy:           sub.Accuracy,
		TimeTaken:          sub.TimeTaken,
		AIBaselineScore:    aiScore,
		AIBaselineAccuracy: b.Accuracy,
		Timestamp:          s.clock.Now().UTC(),
	}

	if err := s.storage.RecordScore(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("score recorded",
		slog.String("user_id", string(userID)),
		slog.String("game_type", string(sub.GameType)),
		slog.Int("score", sub.Score),
		slog.String("verdict", string(verdict)))

	return &Receipt{
		ScoreID:    record.ID,
		Score:      record.Score,
		Accuracy:   record.Accuracy,
		AIScore:    aiScore,
		AIAccuracy: b.Accuracy,
		BeatAI:     verdict == model.VerdictHumanBetter,
		Verdict:    verdict,
	}, nil
}

func validate(sub Submission) error {
	if sub.GameType == "" {
		return fmt.Errorf("%w: game type is required", model.ErrInvalidScore)
	}
	if sub.Score < 0 {
		return fmt.Errorf("%w: score must not be negative", model.ErrInvalidScore)
	}
	if sub.Accuracy < 0 || sub.Accuracy > 100 {
		return fmt.Errorf("%w: accuracy must be between 0 and 100", model.ErrInvalidScore)
	}
	if sub.TimeTaken < 0 {
		return fmt.Errorf("%w: time taken must not be negative", model.ErrInvalidScore)
	}
	return nil
}

// ModeStats aggregates a user's attempts within one game type. Averages
// are rounded to one decimal place.
type ModeStats struct {
	GamesPlayed int     `json:"games_played"`
	AvgAccuracy float64 `json:"avg_accuracy"`
	AvgTime     float64 `json:"avg_time"`
	BestScore   int     `json:"best_score"`
}

// UserStats is a user's lifetime performance summary. GameStats always
// carries an entry for every tracked game type, zeroed when unplayed.
type UserStats struct {
	TotalGamesPlayed int                          `json:"total_games_played"`
	TotalScore       int                          `json:"total_score"`
	GameStats        map[model.GameType]ModeStats `json:"game_stats"`
}

// Stats aggregates a user's score history into per-mode statistics
func (s *Service) Stats(ctx context.Context, userID model.UserID) (*UserStats, error) {
	user, err := s.storage.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.storage.ListScoresByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	type accumulator struct {
		games     int
		accuracy  float64
		time      float64
		bestScore int
	}
	acc := make(map[model.GameType]*accumulator)
	for _, r := range records {
		a, ok := acc[r.GameType]
		if !ok {
			a = &accumulator{}
			acc[r.GameType] = a
		}
		a.games++
		a.accuracy += r.Accuracy
		a.time += float64(r.TimeTaken)
		if r.Score > a.bestScore {
			a.bestScore = r.Score
		}
	}

	gameStats := make(map[model.GameType]ModeStats, len(model.RecognizedGameTypes))
	for _, mode := range model.RecognizedGameTypes {
		a, ok := acc[mode]
		if !ok {
			gameStats[mode] = ModeStats{}
			continue
		}
		gameStats[mode] = ModeStats{
			GamesPlayed: a.games,
			AvgAccuracy: roundTenth(a.accuracy / float64(a.games)),
			AvgTime:     roundTenth(a.time / float64(a.games)),
			BestScore:   a.bestScore,
		}
	}

	return &UserStats{
		TotalGamesPlayed: user.TotalGamesPlayed,
		TotalScore:       user.TotalScore,
		GameStats:        gameStats,
	}, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// LeaderboardEntry is one row of a leaderboard section
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	TotalScore  int    `json:"total_score"`
	GamesPlayed int    `json:"games_played"`
	IsAI        bool   `json:"is_ai"`
}

// Leaderboard holds the human standings and the fixed AI contestants as
// separate sections. Keeping them apart means a strong AI total never
// displaces a human from the board, and vice versa.
type Leaderboard struct {
	Humans []LeaderboardEntry `json:"human_leaders"`
	AI     []LeaderboardEntry `json:"ai_baselines"`
}

// Leaderboard returns the top human players by total score alongside the
// AI contestants, each section ranked independently. The guest identity
// never appears.
func (s *Service) Leaderboard(ctx context.Context) (*Leaderboard, error) {
	users, err := s.storage.ListTopUsers(ctx, maxLeaderboardEntries, model.GuestUserID)
	if err != nil {
		return nil, err
	}

	humans := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		humans = append(humans, LeaderboardEntry{
			Rank:        i + 1,
			Username:    u.Username,
			TotalScore:  u.TotalScore,
			GamesPlayed: u.TotalGamesPlayed,
		})
	}

	leaders := baseline.AILeaders()
	ai := make([]LeaderboardEntry, 0, len(leaders))
	for i, l := range leaders {
		ai = append(ai, LeaderboardEntry{
			Rank:        i + 1,
			Username:    l.Name,
			TotalScore:  l.TotalScore,
			GamesPlayed: l.GamesPlayed,
			IsAI:        true,
		})
	}

	return &Leaderboard{Humans: humans, AI: ai}, nil
}
