package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SubmitScoreRequest is the request body for recording a completed game
type SubmitScoreRequest struct {
	GameType  string  `json:"game_type"`
	Score     int     `json:"score"`
	Accuracy  float64 `json:"accuracy"`
	TimeTaken int     `json:"time_taken"`
}

// PuzzleAnswerRequest is the request body for answering a logic puzzle
type PuzzleAnswerRequest struct {
	ChallengeID string `json:"challenge_id"`
	Answer      string `json:"answer"`
}

// AudioAnswersRequest is the request body for an audio round submission.
// Answers maps clip id to the player's AI-or-human guess.
type AudioAnswersRequest struct {
	ChallengeID string       `json:"challenge_id"`
	Answers     map[int]bool `json:"answers"`
}

// WritingSubmissionRequest is the request body for a creative writing
// submission
type WritingSubmissionRequest struct {
	ChallengeID string `json:"challenge_id"`
	Text        string `json:"text"`
}
