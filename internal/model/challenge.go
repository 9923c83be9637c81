package model

import "time"

// Challenge is a persisted puzzle/answer pairing. The content generator
// writes one at generation time; the grader looks it up by id at
// submission, so the two can never disagree about the expected answer.
type Challenge struct {
	ID        string    `json:"id"`
	GameType  GameType  `json:"game_type"`
	Answer    string    `json:"answer"` // JSON-encoded expected answer payload
	CreatedAt time.Time `json:"created_at"`
}
