/*
Copyright © 2025 Aalify-X
*/
package cmd

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Aalify-X/progrify-be/config"
	"github.com/Aalify-X/progrify-be/database"
	"github.com/Aalify-X/progrify-be/handler"
	"github.com/Aalify-X/progrify-be/middleware"
	"github.com/Aalify-X/progrify-be/service"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document-intelligence server",
	Long:  `Starts the HTTP server that turns uploaded documents into study material`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		aiService, err := newCompletionService(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize AI provider: %v", err)
		}

		extractService := service.NewExtractService()
		studyService := service.NewStudyService(aiService)
		pipelineService := service.NewPipelineService(extractService, studyService, service.DefaultPipelineConfig)
		whopService := service.NewWhopService(cfg.WhopEndpoint)
		sessionStore := database.NewSessionStore()

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		documentHandler := handler.NewDocumentHandler(pipelineService, cfg.MaxUploadSize)
		verifyHandler := handler.NewVerifyHandler(sessionStore, whopService, cfg.SessionSecret, !cfg.IsDevelopment())
		pageHandler := handler.NewPageHandler(sessionStore, cfg.SessionSecret)

		auth := middleware.NewWhopAuth(sessionStore, whopService, cfg.SessionSecret, cfg.IsDevelopment())

		// Setup Gin router
		if !cfg.IsDevelopment() {
			gin.SetMode(gin.ReleaseMode)
		}
		router := gin.Default()
		router.LoadHTMLGlob(cfg.TemplateDir + "/*.html")

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		// Public routes
		router.GET("/", pageHandler.HandleHome)
		router.GET("/verify", pageHandler.HandleVerifyPage)
		router.GET("/logout", verifyHandler.HandleLogout)
		router.POST("/api/verify_whop", verifyHandler.HandleVerifyWhop)

		// Protected pages and API
		protected := router.Group("/")
		protected.Use(auth.Middleware())
		{
			protected.GET("/dashboard", pageHandler.HandleDashboard)
			protected.GET("/pdf_tools", pageHandler.HandlePDFTools)
			protected.GET("/flashcards", pageHandler.HandleFlashcards)
			protected.GET("/whiteboard", pageHandler.HandleWhiteboard)
			protected.GET("/digitalplanner", pageHandler.HandleDigitalPlanner)
			protected.POST("/api/process_document", documentHandler.HandleProcessDocument)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func newCompletionService(cfg *config.Config) (service.CompletionService, error) {
	switch cfg.AIProvider {
	case "gemini":
		keys := strings.Split(cfg.GeminiAPIKey, ",")
		return service.NewGeminiService(keys, cfg.Model)
	default:
		return service.NewOpenRouterService(cfg.AIEndpoint, cfg.OpenRouterAPIKey, cfg.Model), nil
	}
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
