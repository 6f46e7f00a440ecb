package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/menstrualmentor/backend/internal/advisor"
	"github.com/menstrualmentor/backend/internal/config"
	"github.com/menstrualmentor/backend/internal/handlers"
	"github.com/menstrualmentor/backend/internal/logger"
	"github.com/menstrualmentor/backend/internal/metrics"
	"github.com/menstrualmentor/backend/internal/middleware"
	"github.com/menstrualmentor/backend/internal/repository"
	"github.com/menstrualmentor/backend/internal/service"
	"github.com/menstrualmentor/backend/pkg/supabase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewSlogLogger(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))
	logger.SetDefault(log)

	log.Info("starting Menstrual Mentor API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	m := metrics.New()

	// Repositories
	cycleRepo := repository.NewCycleRepository(supabaseClient)
	profileRepo := repository.NewProfileRepository(supabaseClient)
	textRepo := repository.NewTextAnalysisRepository(supabaseClient)
	imageRepo := repository.NewImageAnalysisRepository(supabaseClient)
	idempotencyRepo := repository.NewIdempotencyRepository(supabaseClient)

	// Without an API key the text endpoint serves the static fallback
	var adv service.Advisor
	if cfg.LLM.APIKey != "" {
		a, err := advisor.New(advisor.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			BaseURL:     cfg.LLM.BaseURL,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		})
		if err != nil {
			return fmt.Errorf("failed to create advisor: %w", err)
		}
		adv = a
		log.Info("wellness advisor enabled", logger.String("model", cfg.LLM.Model))
	} else {
		log.Warn("llm.api_key not set, text analysis will return fallback advice")
	}

	// Services
	cycleService := service.NewCycleService(cycleRepo, cfg.Analysis.HistoryLimit, service.WithMetrics(m))
	imageService := service.NewImageAnalysisService(imageRepo, m)
	textService := service.NewTextAnalysisService(adv, textRepo, m)
	authService := service.NewAuthService(supabaseClient, profileRepo)

	// Handlers
	cycleHandler := handlers.NewCycleHandler(cycleService)
	analysisHandler := handlers.NewAnalysisHandler(cycleService, imageService, textService)
	authHandler := handlers.NewAuthHandler(authService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log, m))
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.RateLimit())

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var verifier middleware.TokenVerifier = supabaseClient
	if cfg.Supabase.JWTSecret != "" {
		jwtVerifier, err := supabase.NewJWTVerifier(cfg.Supabase.JWTSecret)
		if err != nil {
			return fmt.Errorf("invalid supabase jwt secret: %w", err)
		}
		verifier = jwtVerifier
		log.Info("verifying access tokens locally")
	}
	requireAuth := middleware.Auth(verifier)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimitAuth())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		protected := v1.Group("")
		protected.Use(requireAuth)
		{
			protected.GET("/cycles", cycleHandler.ListCycles)
			protected.POST("/cycles", middleware.Idempotency(idempotencyRepo), cycleHandler.CreateCycle)
			protected.DELETE("/cycles/:id", cycleHandler.DeleteCycle)

			protected.GET("/analysis/cycle", analysisHandler.GetCycleAnalysis)
			protected.GET("/analysis/detailed", analysisHandler.GetDetailedAnalysis)
			protected.POST("/analysis/image", middleware.RateLimitAnalysis(), analysisHandler.AnalyzeImage)
			protected.POST("/analysis/text", middleware.RateLimitAnalysis(), analysisHandler.AnalyzeText)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
