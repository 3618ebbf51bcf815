package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fedscout/fedscout/internal/api/handlers"
	"github.com/fedscout/fedscout/internal/api/middleware"
)

type Deps struct {
	Profile     *handlers.ProfileHandler
	Opportunity *handlers.OpportunityHandler
	Score       *handlers.ScoreHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.GET("/profile/me", d.Profile.Me)
	auth.PATCH("/profile/me", d.Profile.Patch)
	auth.PUT("/profile/naics", d.Profile.ReplaceNAICS)
	auth.PUT("/profile/certifications", d.Profile.ReplaceCertifications)
	auth.PUT("/profile/capability-statement", d.Profile.SaveCapabilityStatement)

	auth.GET("/opportunities", d.Opportunity.List)
	auth.GET("/opportunities/:opportunity_id", d.Opportunity.Get)

	auth.POST("/scores/calculate", d.Score.Calculate)
	auth.GET("/scores", d.Score.List)
	auth.GET("/scores/summary", d.Score.Summary)
	auth.GET("/scores/:opportunity_id", d.Score.Get)

	// Ingest is for the sync job and operators only.
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.POST("/opportunities", d.Opportunity.Ingest)
}
