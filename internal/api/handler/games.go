package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/anvitha1105/Capstone-finalreview/internal/api/request"
	"github.com/anvitha1105/Capstone-finalreview/internal/api/response"
	"github.com/anvitha1105/Capstone-finalreview/internal/metrics"
	"github.com/anvitha1105/Capstone-finalreview/internal/model"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/games"
)

// GamesHandler serves game content and grades graded submissions
type GamesHandler struct {
	gamesService *games.Service
	metrics      *metrics.Metrics
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(gamesService *games.Service, m *metrics.Metrics) *GamesHandler {
	return &GamesHandler{
		gamesService: gamesService,
		metrics:      m,
	}
}

// ImageData handles GET /api/v1/games/ai-image/data
func (h *GamesHandler) ImageData(w http.ResponseWriter, r *http.Request) {
	h.metrics.RecordChallengeGenerated(string(model.GameAIImage))
	response.JSON(w, http.StatusOK, map[string]any{"images": h.gamesService.ImageSet()})
}

// TextData handles GET /api/v1/games/text-ai/data
func (h *GamesHandler) TextData(w http.ResponseWriter, r *http.Request) {
	h.metrics.RecordChallengeGenerated(string(model.GameTextAI))
	response.JSON(w, http.StatusOK, map[string]any{"texts": h.gamesService.TextSet()})
}

// MemoryData handles GET /api/v1/games/memory/data?difficulty=N
func (h *GamesHandler) MemoryData(w http.ResponseWriter, r *http.Request) {
	difficulty, err := difficultyParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.RecordChallengeGenerated(string(model.GameMemoryChallenge))
	response.JSON(w, http.StatusOK, h.gamesService.MemorySequence(difficulty))
}

// PuzzleData handles GET /api/v1/games/logical-reasoning/data?difficulty=N
func (h *GamesHandler) PuzzleData(w http.ResponseWriter, r *http.Request) {
	difficulty, err := difficultyParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	puzzle, err := h.gamesService.LogicalPuzzle(r.Context(), difficulty)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.RecordChallengeGenerated(string(model.GameLogicalReasoning))
	response.JSON(w, http.StatusOK, puzzle)
}

// PuzzleSubmit handles POST /api/v1/games/logical-reasoning/submit
func (h *GamesHandler) PuzzleSubmit(w http.ResponseWriter, r *http.Request) {
	var req request.PuzzleAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.ChallengeID == "" {
		WriteError(w, NewInvalidRequestError("challenge_id is required"))
		return
	}

	result, err := h.gamesService.GradePuzzle(r.Context(), req.ChallengeID, req.Answer)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// AudioData handles GET /api/v1/games/audio-recognition/data
func (h *GamesHandler) AudioData(w http.ResponseWriter, r *http.Request) {
	set, err := h.gamesService.AudioSet(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.RecordChallengeGenerated(string(model.GameAudioRecognition))
	response.JSON(w, http.StatusOK, set)
}

// AudioSubmit handles POST /api/v1/games/audio-recognition/submit
func (h *GamesHandler) AudioSubmit(w http.ResponseWriter, r *http.Request) {
	var req request.AudioAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.ChallengeID == "" {
		WriteError(w, NewInvalidRequestError("challenge_id is required"))
		return
	}

	result, err := h.gamesService.GradeAudio(r.Context(), req.ChallengeID, req.Answers)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// WritingPrompt handles GET /api/v1/games/creative-writing/prompt
func (h *GamesHandler) WritingPrompt(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.gamesService.NewWritingPrompt(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.RecordChallengeGenerated(string(model.GameCreativeWriting))
	response.JSON(w, http.StatusOK, prompt)
}

// WritingSubmit handles POST /api/v1/games/creative-writing/submit
func (h *GamesHandler) WritingSubmit(w http.ResponseWriter, r *http.Request) {
	var req request.WritingSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.ChallengeID == "" {
		WriteError(w, NewInvalidRequestError("challenge_id is required"))
		return
	}

	result, err := h.gamesService.GradeWriting(r.Context(), req.ChallengeID, req.Text)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// difficultyParam reads the difficulty query parameter, defaulting to 1
func difficultyParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("difficulty")
	if raw == "" {
		return 1, nil
	}
	difficulty, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewInvalidRequestError("difficulty must be an integer")
	}
	return difficulty, nil
}
