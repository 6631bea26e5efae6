package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes() {
	a.Router.GET("/health", health)

	app := a.Router.Group("/metrics")
	app.GET("", gin.WrapH(promhttp.Handler()))
	if a.Aggregator != nil {
		app.GET("/realtime", a.realtimeMetrics)
	}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "UP",
		"service":   serviceName,
		"timestamp": time.Now().Format(models.LocalTimeLayout),
	})
}

func (a *App) realtimeMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, a.Aggregator.Snapshot())
}
