package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"matchpoint-api/models"
	"matchpoint-api/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// GetMatches lists all matches
// @Summary List matches
// @Description Get all matches with team names and per-set scores, newest first
// @Tags matches
// @Produce json
// @Success 200 {array} models.MatchSummary
// @Failure 500 {object} map[string]string
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	matches, err := h.matchService.ListMatches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// CreateMatch creates a new match
// @Summary Create a new match
// @Description Create a match with two teams and their rosters
// @Tags matches
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 201 {object} models.CreateMatchResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	match, err := h.matchService.CreateMatch(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.CreateMatchResponse{ID: match.ID})
}

// GetMatch retrieves a match by ID
// @Summary Get match by ID
// @Description Get full match details including rosters and per-set scores
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.MatchDetail
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	match, err := h.matchService.GetMatch(uint(matchID))
	if err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, match)
}

// UpdateMatch updates match status and/or winner
// @Summary Update match status and/or winner (PATCH)
// @Description Update a match's status. Completing a match without a winner_id resolves the winner from stored sets.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param update body models.UpdateMatchRequest true "Status and/or winner update"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches/{id} [patch]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	var req models.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Status == nil && req.WinnerID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field (status or winner_id) must be provided"})
		return
	}

	if _, err := h.matchService.UpdateMatch(uint(matchID), req); err != nil {
		switch {
		case errors.Is(err, services.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		case errors.Is(err, services.ErrMatchCompleted):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Match already completed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
