package api

import (
	"Gramscope/internal/api/middleware"
	"Gramscope/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Instagram Scraper Service API",
		})
	})

	r.GET("/profiles", group.ProfileHandler.GetProfiles)
	r.POST("/scrape-accounts", group.ScrapeHandler.ScrapeAccounts)

	r.GET("/accounts", group.AccountHandler.ListAccounts)
	r.POST("/accounts", group.AccountHandler.AddAccounts)

	rankingGroup := r.Group("/rankings")
	{
		rankingGroup.POST("/snapshot", group.RankingHandler.SnapshotRanking)
		rankingGroup.GET("", group.RankingHandler.GetLatestRanking)
		rankingGroup.GET("/verify", group.RankingHandler.VerifyRanking)
	}

	return r
}
