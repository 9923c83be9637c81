package games

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/anvitha1105/Capstone-finalreview/internal/model"
)

// AIWritingScore is the fixed creativity score attributed to the canned
// AI writing shown alongside a creative writing submission
const AIWritingScore = 85

// GradePuzzle scores a logical reasoning submission against the answer
// persisted when the puzzle was generated. Comparison ignores case and
// surrounding whitespace. Returns model.ErrChallengeNotFound when the
// challenge id is unknown, expired, or belongs to a different game.
func (s *Service) GradePuzzle(ctx context.Context, challengeID, answer string) (*PuzzleResult, error) {
	challenge, err := s.storage.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge.GameType != model.GameLogicalReasoning {
		return nil, model.ErrChallengeNotFound
	}

	var expected puzzleAnswer
	if err := json.Unmarshal([]byte(challenge.Answer), &expected); err != nil {
		return nil, err
	}

	correct := strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(expected.Answer))

	result := &PuzzleResult{Correct: correct}
	if correct {
		result.Score = 100
		result.Accuracy = 100
		result.Explanation = "Correct! Well reasoned."
	} else {
		result.Explanation = fmt.Sprintf("The correct answer was %s.", expected.Answer)
	}
	return result, nil
}

// GradeAudio scores an audio discrimination submission. answers maps clip
// id to the player's AI-or-human guess; clips absent from the map count as
// wrong. Score is 100 per correct clip and accuracy the correct fraction.
func (s *Service) GradeAudio(ctx context.Context, challengeID string, answers map[int]bool) (*AudioResult, error) {
	challenge, err := s.storage.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge.GameType != model.GameAudioRecognition {
		return nil, model.ErrChallengeNotFound
	}

	var expected audioAnswer
	if err := json.Unmarshal([]byte(challenge.Answer), &expected); err != nil {
		return nil, err
	}

	correct := 0
	for id, isAI := range expected.Labels {
		if guess, ok := answers[id]; ok && guess == isAI {
			correct++
		}
	}
	total := len(expected.Labels)

	return &AudioResult{
		CorrectCount: correct,
		TotalClips:   total,
		Score:        correct * 100,
		Accuracy:     100 * float64(correct) / float64(total),
	}, nil
}

// GradeWriting scores a creative writing submission against the prompt
// challenge it answered. The creativity score grows half a point per word
// capped at 100, and the AI comparison text is the canned response for
// the prompt when one exists.
func (s *Service) GradeWriting(ctx context.Context, challengeID, text string) (*WritingResult, error) {
	challenge, err := s.storage.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge.GameType != model.GameCreativeWriting {
		return nil, model.ErrChallengeNotFound
	}

	var persisted writingAnswer
	if err := json.Unmarshal([]byte(challenge.Answer), &persisted); err != nil {
		return nil, err
	}

	wordCount := len(strings.Fields(text))
	userScore := int(math.Min(float64(wordCount)*0.5, 100))

	aiWriting, ok := aiWritings[persisted.Prompt]
	if !ok {
		aiWriting = fallbackAIWriting
	}

	return &WritingResult{
		UserWriting: text,
		AIWriting:   aiWriting,
		UserScore:   userScore,
		AIScore:     AIWritingScore,
		WordCount:   wordCount,
		Feedback:    writingFeedback(userScore),
		Accuracy:    float64(userScore),
	}, nil
}

func writingFeedback(score int) string {
	switch {
	case score >= 80:
		return "Excellent work! Your writing shows strong creativity and depth."
	case score >= 50:
		return "Good effort! Try developing your ideas a little further."
	default:
		return "Keep practicing! Longer, more detailed responses score higher."
	}
}
