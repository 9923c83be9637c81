package games

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/clock"
	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/random"
	"github.com/anvitha1105/Capstone-finalreview/internal/model"
	"github.com/anvitha1105/Capstone-finalreview/internal/storage"
)

// Service generates per-attempt game content. Every generator call is
// independent: there is no shared mutable state beyond the random source,
// and nothing blocks except challenge persistence at the storage boundary.
type Service struct {
	storage storage.Storage
	random  random.Random
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new games Service
func New(store storage.Storage, rnd random.Random, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		random:  rnd,
		clock:   clk,
		logger:  logger,
	}
}

// sampleSize is how many catalog items one discrimination round shows
const sampleSize = 3

// ImageSet samples a discrimination round from the image catalog
func (s *Service) ImageSet() []ImageItem {
	idx := s.random.Perm(len(imageCatalog))[:sampleSize]
	items := make([]ImageItem, sampleSize)
	for i, j := range idx {
		items[i] = imageCatalog[j]
	}
	return items
}

// TextSet samples a discrimination round from the text catalog
func (s *Service) TextSet() []TextItem {
	idx := s.random.Perm(len(textCatalog))[:sampleSize]
	items := make([]TextItem, sampleSize)
	for i, j := range idx {
		items[i] = textCatalog[j]
	}
	return items
}

// AudioSet samples an audio round and persists the clip labels as a
// challenge, so the grader can verify a later submission against the
// exact set that was served
func (s *Service) AudioSet(ctx context.Context) (*AudioSet, error) {
	idx := s.random.Perm(len(audioCatalog))[:sampleSize]
	clips := make([]AudioClip, sampleSize)
	labels := make(map[int]bool, sampleSize)
	for i, j := range idx {
		clips[i] = audioCatalog[j]
		labels[clips[i].ID] = clips[i].IsAI
	}

	answer, err := json.Marshal(audioAnswer{Labels: labels})
	if err != nil {
		return nil, err
	}

	challenge := &model.Challenge{
		ID:        uuid.NewString(),
		GameType:  model.GameAudioRecognition,
		Answer:    string(answer),
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.storage.SaveChallenge(ctx, challenge); err != nil {
		return nil, err
	}

	return &AudioSet{ChallengeID: challenge.ID, Clips: clips}, nil
}

// MemorySequence produces a digit recall sequence of length
// 4 + 2*difficulty, each digit in [1, 9]. Difficulty below 1 is clamped.
func (s *Service) MemorySequence(difficulty int) MemoryChallenge {
	if difficulty < 1 {
		difficulty = 1
	}

	length := 4 + 2*difficulty
	sequence := make([]int, length)
	for i := range sequence {
		sequence[i] = s.random.IntRange(1, 9)
	}

	return MemoryChallenge{Sequence: sequence, Difficulty: difficulty}
}

// LogicalPuzzle generates one puzzle drawn uniformly from the three
// puzzle families and persists its expected answer. Number sequences
// derive the answer from their own generation parameters, so generator
// and grader cannot disagree.
func (s *Service) LogicalPuzzle(ctx context.Context, difficulty int) (*Puzzle, error) {
	if difficulty < 1 {
		difficulty = 1
	}

	var (
		puzzle Puzzle
		answer string
	)

	switch s.random.Intn(3) {
	case 0:
		puzzle, answer = s.numberSequencePuzzle()
	case 1:
		p := patternFixtures[s.random.Intn(len(patternFixtures))]
		puzzle = Puzzle{
			Type:     PuzzlePatternMatching,
			Question: fmt.Sprintf("What comes next in this pattern: %s?", p.Pattern),
			Options:  p.Options,
		}
		answer = p.Next
	default:
		p := logicGridFixtures[s.random.Intn(len(logicGridFixtures))]
		puzzle = Puzzle{
			Type:     PuzzleLogicGrid,
			Question: p.Question,
			Options:  p.Options,
		}
		answer = p.Answer
	}

	puzzle.ID = uuid.NewString()
	puzzle.Difficulty = difficulty

	answerPayload, err := json.Marshal(puzzleAnswer{Answer: answer})
	if err != nil {
		return nil, err
	}

	challenge := &model.Challenge{
		ID:        puzzle.ID,
		GameType:  model.GameLogicalReasoning,
		Answer:    string(answerPayload),
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.storage.SaveChallenge(ctx, challenge); err != nil {
		return nil, err
	}

	return &puzzle, nil
}

// numberSequencePuzzle builds an arithmetic or geometric progression
// showing four terms; the answer is the fifth term computed from the
// generation parameters
func (s *Service) numberSequencePuzzle() (Puzzle, string) {
	const shown = 4
	terms := make([]string, shown)
	var next int

	if s.random.Intn(2) == 0 {
		// Arithmetic: start + n*step
		start := s.random.IntRange(1, 10)
		step := s.random.IntRange(2, 8)
		for n := 0; n < shown; n++ {
			terms[n] = strconv.Itoa(start + n*step)
		}
		next = start + shown*step
	} else {
		// Geometric: start * ratio^n
		start := s.random.IntRange(2, 5)
		ratio := s.random.IntRange(2, 3)
		value := start
		for n := 0; n < shown; n++ {
			terms[n] = strconv.Itoa(value)
			value *= ratio
		}
		next = value
	}

	return Puzzle{
		Type:     PuzzleNumberSequence,
		Question: fmt.Sprintf("What is the next number in this sequence: %s?", strings.Join(terms, ", ")),
	}, strconv.Itoa(next)
}

// NewWritingPrompt picks a prompt uniformly from the catalog and persists
// it so the submission can be matched to the prompt it answered
func (s *Service) NewWritingPrompt(ctx context.Context) (*WritingPrompt, error) {
	prompt := writingPrompts[s.random.Intn(len(writingPrompts))]

	answerPayload, err := json.Marshal(writingAnswer{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	challenge := &model.Challenge{
		ID:        uuid.NewString(),
		GameType:  model.GameCreativeWriting,
		Answer:    string(answerPayload),
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.storage.SaveChallenge(ctx, challenge); err != nil {
		return nil, err
	}

	return &WritingPrompt{
		ID:        challenge.ID,
		Prompt:    prompt,
		TimeLimit: WritingTimeLimit,
		WordLimit: WritingWordLimit,
	}, nil
}

// Persisted challenge answer payloads

type puzzleAnswer struct {
	Answer string `json:"answer"`
}

type audioAnswer struct {
	Labels map[int]bool `json:"labels"`
}

type writingAnswer struct {
	Prompt string `json:"prompt"`
}
