package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	corsgin "github.com/rs/cors/wrapper/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trustgate/cmd/api/auth"
	"trustgate/cmd/api/clients/crmclient"
	"trustgate/cmd/api/clients/scanclient"
	"trustgate/cmd/api/handlers"
	"trustgate/cmd/api/middleware"
	"trustgate/cmd/api/services"
	"trustgate/config"
	_ "trustgate/docs"
	"trustgate/models"
	"trustgate/repositories"
	"trustgate/seoassist"
)

// New assembles the engine from config and environment. Everything behind
// the routes is constructed here so main stays a thin entrypoint.
func New() (*gin.Engine, error) {
	cfg := config.GetConfig()

	documents, err := repositories.NewDocumentRepository(config.ResolvePath(cfg.Content.DataDir))
	if err != nil {
		return nil, err
	}
	settings, err := repositories.NewSettingsRepository(config.ResolvePath(cfg.Content.SettingsFile))
	if err != nil {
		return nil, err
	}
	uploads, err := repositories.NewUploadRepository(
		config.ResolvePath(cfg.Uploads.Dir), cfg.Uploads.PublicBasePath, cfg.Uploads.MaxBytes)
	if err != nil {
		return nil, err
	}

	gate, err := auth.NewAdminGateFromEnv()
	if err != nil {
		return nil, fmt.Errorf("admin gate: %w", err)
	}

	contentSvc := services.NewContentService(documents)
	scanSvc := services.NewScanService(
		scanclient.New(cfg.ScanAPI.BaseURL),
		time.Duration(cfg.ScanAPI.PollIntervalSeconds)*time.Second,
		cfg.ScanAPI.PollMaxAttempts,
	)
	seoSvc := services.NewSEOService(seoassist.NewAnalyzer(cfg.SEO.GeminiModel))
	relay := crmclient.NewFromEnv()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(corsgin.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", handlers.HealthHandler(scanSvc))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.Static(cfg.Uploads.PublicBasePath, uploads.Dir())

	api := r.Group("/api")
	{
		api.POST("/auth/login", handlers.LoginHandler(gate))

		registerContentRoutes(api.Group("/blog/posts"), contentSvc, gate, models.ClassPost)
		registerContentRoutes(api.Group("/webinars"), contentSvc, gate, models.ClassWebinar)

		api.GET("/blog/feed", handlers.BlogFeedHandler(contentSvc, cfg.SiteURL))
		api.POST("/blog/upload", middleware.AdminAuth(gate), handlers.UploadHandler(uploads))

		api.GET("/settings", handlers.GetSettingsHandler(settings))
		api.PUT("/settings", middleware.AdminAuth(gate), handlers.PutSettingsHandler(settings))

		api.POST("/ai/seo-assist", middleware.AdminAuth(gate), handlers.SEOAssistHandler(seoSvc))

		api.POST("/forms/:kind", handlers.SubmitFormHandler(relay))
	}

	security := r.Group("/security")
	{
		security.POST("/external-scans", handlers.CreateScanHandler(scanSvc))
		security.GET("/external-scans/:id", handlers.GetScanHandler(scanSvc))
		security.GET("/external-scans/:id/findings", handlers.GetScanFindingsHandler(scanSvc))
		security.GET("/external-scans/:id/findings/:findingId", handlers.GetFindingDetailsHandler(scanSvc))
		security.GET("/external-scans/:id/breaches", handlers.GetScanBreachesHandler(scanSvc))
		security.GET("/external-scans/:id/report-url", handlers.GetReportURLHandler(scanSvc))
	}

	return r, nil
}

// registerContentRoutes wires the shared CRUD surface for one document
// class. Reads are public (drafts admin-only), writes sit behind the gate.
func registerContentRoutes(g *gin.RouterGroup, svc *services.ContentService, gate *auth.AdminGate, class models.DocumentClass) {
	g.GET("", middleware.TryAdminAuth(gate), handlers.ListDocumentsHandler(svc, class))
	g.GET("/:slug", handlers.GetDocumentHandler(svc, class))
	g.POST("", middleware.AdminAuth(gate), handlers.CreateDocumentHandler(svc, class))
	g.PUT("/:slug", middleware.AdminAuth(gate), handlers.UpdateDocumentHandler(svc, class))
	g.DELETE("/:slug", middleware.AdminAuth(gate), handlers.DeleteDocumentHandler(svc, class))
}
