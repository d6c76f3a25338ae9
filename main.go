package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"

	"testprep-server/answerkey"
	"testprep-server/config"
	"testprep-server/handlers"
	"testprep-server/middleware"
	"testprep-server/render"
	"testprep-server/report"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Answer key source: CSV by default, Postgres when a database URL is set.
	var keySource answerkey.Source = answerkey.NewCSVSource(cfg.AnswerKeyPath)
	if cfg.DatabaseURL != "" {
		pool, err := answerkey.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v", err)
		}
		defer pool.Close()
		if err := answerkey.EnsureSchema(context.Background(), pool, cfg.AnswerKeyTable); err != nil {
			log.Fatalf("Error ensuring answer key schema: %v", err)
		}
		keySource = answerkey.NewPostgresSource(pool, cfg.AnswerKeyTable)
	}

	// Study-tip tables: built-in defaults, optionally overridden from YAML.
	tips, err := report.LoadTipLibrary(cfg.TipsPath)
	if err != nil {
		log.Fatalf("Error loading tip library: %v", err)
	}
	generator := report.NewGenerator(render.NewChrome(cfg.ChartRenderTimeout), tips)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	// The report template is shared with the PDF pipeline; registering it
	// here lets the preview route render the same document in a browser.
	renderer := multitemplate.NewRenderer()
	renderer.AddFromString("report", report.TemplateHTML)
	router.HTMLRender = renderer

	// Cross-origin access is restricted to the configured frontend.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendOrigin},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	router.GET("/healthz", handlers.Health())
	api := router.Group("/api/testprep")
	{
		api.POST("/correct", handlers.CorrectAnswers(keySource))
		api.POST("/generate-pdf", handlers.GeneratePDF(generator))
		api.POST("/report/preview", handlers.ReportPreview(generator))
	}

	// Start the server
	srv := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: router,
	}

	// Goroutine to gracefully shut down the server
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("TestPrep server starting on %s", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server startup error: %v", err)
	}
	log.Println("Server exited gracefully.")
}
