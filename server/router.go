package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpHandler "postpilot/interfaces/http"
	"postpilot/interfaces/middleware"
)

// InitiateRouter assembles the HTTP surface. Handlers may be nil when their
// backing service is not configured; the affected routes then fail closed
// with a service-unavailable response.
func InitiateRouter(
	oauthHandler httpHandler.IOAuthHandler,
	integrationHandler httpHandler.IIntegrationHandler,
	postHandler httpHandler.IPostHandler,
	mediaHandler httpHandler.IMediaHandler,
	billingHandler httpHandler.IBillingHandler,
	dashboardHandler httpHandler.IDashboardHandler,
	secretKey string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// OAuth connection flow lives outside /api: the provider redirects the
	// bare browser here.
	router.GET("/auth/:provider/start", oauthHandler.Start)
	router.GET("/auth/:provider/callback", oauthHandler.Callback)

	api := router.Group("api")
	api.Use(middleware.Identity(secretKey))

	api.DELETE("/integrations/:provider", oauthHandler.Disconnect)
	api.GET("/integrations/:provider/status", oauthHandler.Status)
	api.GET("/integrations/tiktok/videos", integrationHandler.ListVideos)
	api.GET("/integrations/tiktok/videos/:videoId/comments", integrationHandler.ListComments)
	api.GET("/integrations/google-photos/albums", integrationHandler.ListAlbums)

	api.GET("/posts", postHandler.List)
	api.POST("/posts", postHandler.Create)
	api.PATCH("/posts/:id/status", postHandler.UpdateStatus)
	api.DELETE("/posts/:id", postHandler.Delete)

	api.GET("/media", mediaHandler.List)
	api.POST("/media", mediaHandler.Upload)
	api.DELETE("/media/:id", mediaHandler.Delete)

	api.POST("/billing/checkout", billingHandler.Checkout)

	api.GET("/dashboard", dashboardHandler.Selected)
	api.GET("/dashboard/tabs", dashboardHandler.Tabs)

	return router
}
