package model

// Baseline is the static per-mode AI performance configuration. The set of
// baselines is read-only after initialization; runtime reconfiguration
// replaces the whole mapping, never a single entry.
type Baseline struct {
	Accuracy        float64 `json:"accuracy"`         // percent, 0-100
	AverageTime     float64 `json:"average_time"`     // seconds
	ScoreMultiplier int     `json:"score_multiplier"` // percent, applied on top of accuracy
}

// Fallback baseline for game types without an explicit entry
const (
	DefaultBaselineAccuracy   = 80.0
	DefaultBaselineMultiplier = 100
)

// Verdict is the human-vs-AI outcome of one score comparison
type Verdict string

const (
	VerdictHumanBetter Verdict = "human_better"
	VerdictAIBetter    Verdict = "ai_better"
)
