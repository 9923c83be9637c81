package handler

import (
	"encoding/json"
	"net/http"

	"github.com/anvitha1105/Capstone-finalreview/internal/api/middleware"
	"github.com/anvitha1105/Capstone-finalreview/internal/api/request"
	"github.com/anvitha1105/Capstone-finalreview/internal/api/response"
	"github.com/anvitha1105/Capstone-finalreview/internal/metrics"
	"github.com/anvitha1105/Capstone-finalreview/internal/model"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/scores"
)

// ScoresHandler handles score submission, stats, and the leaderboard
type ScoresHandler struct {
	scoresService *scores.Service
	metrics       *metrics.Metrics
}

// NewScoresHandler creates a new scores handler
func NewScoresHandler(scoresService *scores.Service, m *metrics.Metrics) *ScoresHandler {
	return &ScoresHandler{
		scoresService: scoresService,
		metrics:       m,
	}
}

// Submit handles POST /api/v1/scores
func (h *ScoresHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	user := middleware.MustGetUser(r.Context())

	receipt, err := h.scoresService.Submit(r.Context(), user.ID, scores.Submission{
		GameType:  model.GameType(req.GameType),
		Score:     req.Score,
		Accuracy:  req.Accuracy,
		TimeTaken: req.TimeTaken,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.RecordScoreSubmitted(req.GameType, string(receipt.Verdict))
	response.JSON(w, http.StatusCreated, receipt)
}

// UserStats handles GET /api/v1/stats/user
func (h *ScoresHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	stats, err := h.scoresService.Stats(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *ScoresHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.scoresService.Leaderboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, board)
}
