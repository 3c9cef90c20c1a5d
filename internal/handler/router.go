package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/handler/api"
	"nightlife-feedback/internal/handler/middleware"
	"nightlife-feedback/internal/pkg/config"
)

// base64 inflates the photo by a third; the rest is ratings and comment.
const maxSubmitBodyBytes = feedback.MaxPhotoBytes*4/3 + 64<<10

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, feedbackHandler *api.FeedbackHandler, presenceHandler *api.PresenceHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, feedbackHandler, presenceHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, feedbackHandler *api.FeedbackHandler, presenceHandler *api.PresenceHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		fb := apiGroup.Group("/feedback")
		{
			addRoutes(fb, []route{
				{Method: http.MethodPost, Path: "/requests", Handler: feedbackHandler.Schedule},
				{Method: http.MethodGet, Path: "/requests", Handler: feedbackHandler.ListActive},
				{Method: http.MethodPost, Path: "/requests/:id/submit", Handler: feedbackHandler.Submit, Mw: []gin.HandlerFunc{middleware.MaxBodyBytes(maxSubmitBodyBytes)}},
				{Method: http.MethodPost, Path: "/requests/:id/dismiss", Handler: feedbackHandler.Dismiss},
				{Method: http.MethodGet, Path: "/history", Handler: feedbackHandler.History},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPut, Path: "/presence", Handler: presenceHandler.Heartbeat},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
