package handlers

import (
	"errors"
	"net/http"

	"matchpoint-api/models"
	"matchpoint-api/services"

	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	scoreService *services.ScoreService
}

func NewScoreHandler(scoreService *services.ScoreService) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
	}
}

// SubmitScore records games for one team in one set
// @Summary Submit a score
// @Description Upsert the game count for a (match, team, set) key. The first score moves a scheduled match to in_progress.
// @Tags scores
// @Accept json
// @Produce json
// @Param score body models.SubmitScoreRequest true "Score data"
// @Success 200 {object} models.Score
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /scores [post]
func (h *ScoreHandler) SubmitScore(c *gin.Context) {
	var req models.SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	score, err := h.scoreService.SubmitScore(req)
	if err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, score)
}
