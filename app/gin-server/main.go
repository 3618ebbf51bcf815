package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/fedscout/fedscout/config"
	"github.com/fedscout/fedscout/internal/api/handlers"
	"github.com/fedscout/fedscout/internal/api/middleware"
	"github.com/fedscout/fedscout/internal/api/routes"
	"github.com/fedscout/fedscout/internal/cache"
	"github.com/fedscout/fedscout/internal/logger"
	pgrepo "github.com/fedscout/fedscout/internal/repositories/postgres"
	"github.com/fedscout/fedscout/internal/scheduler"
	"github.com/fedscout/fedscout/internal/scoring"
	"github.com/fedscout/fedscout/internal/services"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	l.Info("PostgreSQL connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	// Repositories
	companyRepo := pgrepo.NewCompanyRepo(config.PostgresDB)
	opportunityRepo := pgrepo.NewOpportunityRepo(config.PostgresDB)
	scoreRepo := pgrepo.NewScoreRepo(config.PostgresDB)

	// Services
	redisCache := cache.NewRedisCache(config.RedisClient)
	engine := scoring.NewEngine()

	profileSvc := services.NewProfileService(companyRepo, scoreRepo)
	opportunitySvc := services.NewOpportunityService(opportunityRepo)
	scoreSvc := services.NewScoreService(companyRepo, opportunityRepo, scoreRepo, engine, redisCache, config.RedisClient, l)

	// Rescore cron
	sched := scheduler.New(scoreRepo, scoreSvc, l, os.Getenv("RESCORE_CRON"))
	if err := sched.Start(context.Background()); err != nil {
		log.Fatalf("Scheduler init error: %v", err)
	}
	defer sched.Stop()

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Profile:     handlers.NewProfileHandler(profileSvc),
		Opportunity: handlers.NewOpportunityHandler(opportunitySvc),
		Score:       handlers.NewScoreHandler(scoreSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
