package games

// ImageItem is one entry of the image discrimination catalog
type ImageItem struct {
	ID          int    `json:"id"`
	URL         string `json:"url"`
	IsAI        bool   `json:"is_ai"`
	Description string `json:"description"`
}

// TextItem is one entry of the text discrimination catalog
type TextItem struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	IsAI   bool   `json:"is_ai"`
	Source string `json:"source"`
}

// AudioClip is one entry of the audio discrimination catalog
type AudioClip struct {
	ID          int    `json:"id"`
	URL         string `json:"url"`
	IsAI        bool   `json:"is_ai"`
	Description string `json:"description"`
	Duration    int    `json:"duration"` // seconds
}

// AudioSet is a graded audio discrimination round. The clip labels are
// also persisted as a challenge so the submission grader works from the
// same pairing the generator produced.
type AudioSet struct {
	ChallengeID string      `json:"challenge_id"`
	Clips       []AudioClip `json:"clips"`
}

// MemoryChallenge is one memory recall round
type MemoryChallenge struct {
	Sequence   []int `json:"sequence"`
	Difficulty int   `json:"difficulty"`
}

// Puzzle families of the logical reasoning game
const (
	PuzzleNumberSequence  = "number_sequence"
	PuzzlePatternMatching = "pattern_matching"
	PuzzleLogicGrid       = "logic_grid"
)

// Puzzle is one logical reasoning round. The expected answer is persisted
// server-side under ID and deliberately absent from the payload.
type Puzzle struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Question   string   `json:"question"`
	Options    []string `json:"options,omitempty"`
	Difficulty int      `json:"difficulty"`
}

// WritingPrompt is one creative writing round
type WritingPrompt struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	TimeLimit int    `json:"time_limit"` // seconds
	WordLimit int    `json:"word_limit"` // words
}

// Default creative writing limits
const (
	WritingTimeLimit = 300
	WritingWordLimit = 200
)

// PuzzleResult is the graded outcome of a logical reasoning submission
type PuzzleResult struct {
	Correct     bool    `json:"correct"`
	Score       int     `json:"score"`
	Accuracy    float64 `json:"accuracy"`
	Explanation string  `json:"explanation"`
}

// AudioResult is the graded outcome of an audio discrimination submission
type AudioResult struct {
	CorrectCount int     `json:"correct_count"`
	TotalClips   int     `json:"total_clips"`
	Score        int     `json:"score"`
	Accuracy     float64 `json:"accuracy"`
}

// WritingResult is the graded outcome of a creative writing submission
type WritingResult struct {
	UserWriting string  `json:"user_writing"`
	AIWriting   string  `json:"ai_writing"`
	UserScore   int     `json:"user_score"`
	AIScore     int     `json:"ai_score"`
	WordCount   int     `json:"word_count"`
	Feedback    string  `json:"feedback"`
	Accuracy    float64 `json:"accuracy"`
}
