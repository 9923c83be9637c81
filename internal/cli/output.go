package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Receipt:
		o.printReceipt(v)
	case Stats:
		o.printStats(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case MemoryChallenge:
		o.printMemoryChallenge(v)
	case Puzzle:
		o.printPuzzle(v)
	case PuzzleResult:
		o.printPuzzleResult(v)
	case WritingPrompt:
		o.printWritingPrompt(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	IsGuest          bool   `json:"is_guest"`
	TotalGamesPlayed int    `json:"total_games_played"`
	TotalScore       int    `json:"total_score"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// Receipt is the score submission response
type Receipt struct {
	ScoreID    string  `json:"score_id"`
	Score      int     `json:"score"`
	Accuracy   float64 `json:"accuracy"`
	AIScore    int     `json:"ai_score"`
	AIAccuracy float64 `json:"ai_accuracy"`
	BeatAI     bool    `json:"beat_ai"`
	Verdict    string  `json:"verdict"`
}

// ModeStats is the per-game-type stats block
type ModeStats struct {
	GamesPlayed int     `json:"games_played"`
	AvgAccuracy float64 `json:"avg_accuracy"`
	AvgTime     float64 `json:"avg_time"`
	BestScore   int     `json:"best_score"`
}

// Stats is the user statistics response
type Stats struct {
	TotalGamesPlayed int                  `json:"total_games_played"`
	TotalScore       int                  `json:"total_score"`
	GameStats        map[string]ModeStats `json:"game_stats"`
}

// LeaderboardEntry is one leaderboard row
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	TotalScore  int    `json:"total_score"`
	GamesPlayed int    `json:"games_played"`
	IsAI        bool   `json:"is_ai"`
}

// Leaderboard is the leaderboard response, human standings and AI
// contestants as separate sections
type Leaderboard struct {
	Humans []LeaderboardEntry `json:"human_leaders"`
	AI     []LeaderboardEntry `json:"ai_baselines"`
}

// MemoryChallenge is the memory game payload
type MemoryChallenge struct {
	Sequence   []int `json:"sequence"`
	Difficulty int   `json:"difficulty"`
}

// Puzzle is the logical reasoning payload
type Puzzle struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Question   string   `json:"question"`
	Options    []string `json:"options,omitempty"`
	Difficulty int      `json:"difficulty"`
}

// PuzzleResult is the graded puzzle response
type PuzzleResult struct {
	Correct     bool    `json:"correct"`
	Score       int     `json:"score"`
	Accuracy    float64 `json:"accuracy"`
	Explanation string  `json:"explanation"`
}

// WritingPrompt is the creative writing payload
type WritingPrompt struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	TimeLimit int    `json:"time_limit"`
	WordLimit int    `json:"word_limit"`
}

// HealthResult is the health check response
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s\n", u.Username)
	fmt.Printf("  ID: %s\n", u.ID)
	if u.Email != "" {
		fmt.Printf("  Email: %s\n", u.Email)
	}
	fmt.Printf("  Guest: %t\n", u.IsGuest)
	fmt.Printf("  Games played: %d\n", u.TotalGamesPlayed)
	fmt.Printf("  Total score: %d\n", u.TotalScore)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printReceipt(r Receipt) {
	fmt.Printf("Score recorded: %d (accuracy %.1f%%)\n", r.Score, r.Accuracy)
	fmt.Printf("AI baseline: %d (accuracy %.1f%%)\n", r.AIScore, r.AIAccuracy)
	if r.BeatAI {
		fmt.Println("Result: you beat the AI!")
	} else {
		fmt.Println("Result: the AI wins this round")
	}
}

func (o *Output) printStats(s Stats) {
	fmt.Printf("Total games played: %d\n", s.TotalGamesPlayed)
	fmt.Printf("Total score: %d\n", s.TotalScore)
	for mode, stats := range s.GameStats {
		fmt.Printf("  %s: %d played, avg accuracy %.1f%%, avg time %.1fs, best %d\n",
			mode, stats.GamesPlayed, stats.AvgAccuracy, stats.AvgTime, stats.BestScore)
	}
}

func (o *Output) printLeaderboard(l Leaderboard) {
	fmt.Println("Top players:")
	if len(l.Humans) == 0 {
		fmt.Println("  (no scores yet)")
	}
	for _, e := range l.Humans {
		fmt.Printf("  %2d. %s - %d points (%d games)\n",
			e.Rank, e.Username, e.TotalScore, e.GamesPlayed)
	}
	fmt.Println("AI contestants:")
	for _, e := range l.AI {
		fmt.Printf("  %2d. %s - %d points (%d games)\n",
			e.Rank, e.Username, e.TotalScore, e.GamesPlayed)
	}
}

func (o *Output) printMemoryChallenge(m MemoryChallenge) {
	digits := make([]string, len(m.Sequence))
	for i, d := range m.Sequence {
		digits[i] = fmt.Sprintf("%d", d)
	}
	fmt.Printf("Memorize this sequence (difficulty %d):\n", m.Difficulty)
	fmt.Printf("  %s\n", strings.Join(digits, " "))
}

func (o *Output) printPuzzle(p Puzzle) {
	fmt.Printf("Puzzle [%s]: %s\n", p.Type, p.Question)
	for _, opt := range p.Options {
		fmt.Printf("  - %s\n", opt)
	}
	fmt.Printf("Challenge ID: %s\n", p.ID)
}

func (o *Output) printPuzzleResult(r PuzzleResult) {
	if r.Correct {
		fmt.Printf("Correct! Score: %d\n", r.Score)
	} else {
		fmt.Printf("Incorrect. %s\n", r.Explanation)
	}
}

func (o *Output) printWritingPrompt(p WritingPrompt) {
	fmt.Printf("Prompt: %s\n", p.Prompt)
	fmt.Printf("  Time limit: %ds, word limit: %d\n", p.TimeLimit, p.WordLimit)
	fmt.Printf("Challenge ID: %s\n", p.ID)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
