package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fedscout/fedscout/internal/services"
	"github.com/fedscout/fedscout/internal/utils"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// Patch applies a partial profile update. The request body binds into the
// allow-listed ProfilePatch; fields outside it are silently dropped.
func (h *ProfileHandler) Patch(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var patch services.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Patch", "invalid request body", err))
		return
	}

	p, err := h.svc.Patch(c.Request.Context(), userID, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

type replaceNAICSRequest struct {
	Codes []services.NAICSInput `json:"codes"`
}

func (h *ProfileHandler) ReplaceNAICS(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req replaceNAICSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.ReplaceNAICS", "invalid request body", err))
		return
	}

	rows, err := h.svc.ReplaceNAICS(c.Request.Context(), userID, req.Codes)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"naics_codes": rows})
}

type replaceCertificationsRequest struct {
	Certifications []services.CertificationInput `json:"certifications"`
}

func (h *ProfileHandler) ReplaceCertifications(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req replaceCertificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.ReplaceCertifications", "invalid request body", err))
		return
	}

	rows, err := h.svc.ReplaceCertifications(c.Request.Context(), userID, req.Certifications)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"certifications": rows})
}

type capabilityStatementRequest struct {
	Content string `json:"content"`
}

func (h *ProfileHandler) SaveCapabilityStatement(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req capabilityStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.SaveCapabilityStatement", "invalid request body", err))
		return
	}

	cs, err := h.svc.SaveCapabilityStatement(c.Request.Context(), userID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cs)
}
