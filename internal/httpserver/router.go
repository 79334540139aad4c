package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inboxpulse/internal/handler"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	emailHandler *handler.EmailHandler,
	chatHandler *handler.ChatHandler,
	healthHandler *handler.HealthHandler,
	staticDir string,
) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	api := r.Group("/api")
	{
		api.GET("/emails", emailHandler.GetEmails)
		api.GET("/stats", emailHandler.GetStats)
		api.GET("/quick-views", emailHandler.GetQuickViews)

		api.GET("/emails/priority/:level", emailHandler.FilterByPriority)
		api.GET("/emails/sentiment/:sentiment", emailHandler.FilterBySentiment)
		api.GET("/emails/response/:type", emailHandler.FilterByResponse)
		api.GET("/emails/topic/:category", emailHandler.FilterByTopic)

		api.GET("/senders/:email", emailHandler.GetSender)
		api.GET("/action-items", emailHandler.GetActionItems)

		api.POST("/chat", chatHandler.Chat)

		api.GET("/health", healthHandler.Health)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// the dashboard front-end is a separate deliverable; we only serve its
	// built assets when the directory is configured
	if staticDir != "" {
		fileServer := http.FileServer(http.Dir(staticDir))
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet {
				c.Status(http.StatusNotFound)
				return
			}
			fileServer.ServeHTTP(c.Writer, c.Request)
		})
	}

	return &Router{Engine: r}
}

func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
