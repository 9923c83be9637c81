package model

import "time"

// GameType tags which mini-game a score or a piece of content belongs to
type GameType string

// Game types with a tracked AI baseline
const (
	GameAIImage         GameType = "ai_image"
	GameTextAI          GameType = "text_ai"
	GameMemoryChallenge GameType = "memory_challenge"
)

// Additional content-only game types
const (
	GameLogicalReasoning GameType = "logical_reasoning"
	GameCreativeWriting  GameType = "creative_writing"
	GameAudioRecognition GameType = "audio_recognition"
)

// RecognizedGameTypes lists the modes that per-user statistics are
// aggregated over, in reporting order.
var RecognizedGameTypes = []GameType{
	GameAIImage,
	GameTextAI,
	GameMemoryChallenge,
}

// ScoreRecord is one completed attempt. Records are append-only: once
// written they are never mutated or deleted. The AI baseline fields are a
// snapshot of the baseline configuration at submission time; later
// configuration changes do not alter historical records.
type ScoreRecord struct {
	ID                 string    `json:"id"`
	UserID             UserID    `json:"user_id"`
	GameType           GameType  `json:"game_type"`
	Score              int       `json:"score"`
	Accuracy           float64   `json:"accuracy"`
	TimeTaken          int       `json:"time_taken"` // seconds
	AIBaselineScore    int       `json:"ai_baseline_score"`
	AIBaselineAccuracy float64   `json:"ai_baseline_accuracy"`
	Timestamp          time.Time `json:"timestamp"`
}
