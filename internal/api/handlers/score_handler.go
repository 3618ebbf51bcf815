package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fedscout/fedscout/internal/services"
)

type ScoreHandler struct {
	svc services.ScoreService
}

func NewScoreHandler(svc services.ScoreService) *ScoreHandler {
	return &ScoreHandler{svc: svc}
}

// Calculate runs the full batch for the caller. A user without a completed
// profile gets a 200 with status "error" and reason "no_profile" so the
// frontend can redirect to onboarding instead of showing a failure page.
func (h *ScoreHandler) Calculate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.svc.CalculateAllForUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *ScoreHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	minScore, _ := strconv.Atoi(c.DefaultQuery("min_score", "0"))

	rows, err := h.svc.ListForUser(c.Request.Context(), userID, minScore)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scores": rows, "count": len(rows)})
}

func (h *ScoreHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	row, err := h.svc.GetOne(c.Request.Context(), userID, c.Param("opportunity_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *ScoreHandler) Summary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.svc.Summary(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
