package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fedscout/fedscout/internal/services"
	"github.com/fedscout/fedscout/internal/utils"
)

type OpportunityHandler struct {
	svc services.OpportunityService
}

func NewOpportunityHandler(svc services.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{svc: svc}
}

func (h *OpportunityHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	out, err := h.svc.ListActive(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"opportunities": out, "count": len(out)})
}

func (h *OpportunityHandler) Get(c *gin.Context) {
	o, err := h.svc.Get(c.Request.Context(), c.Param("opportunity_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

// Ingest is the admin-only upsert used by the sync job and by operators
// backfilling by hand.
func (h *OpportunityHandler) Ingest(c *gin.Context) {
	var req services.OpportunityIngest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "OpportunityHandler.Ingest", "invalid request body", err))
		return
	}

	o, err := h.svc.Ingest(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}
