package wire

import (
	"Gramscope/internal/api"
	"Gramscope/internal/api/config"
	"Gramscope/internal/api/handler"
	"Gramscope/internal/job"
	"Gramscope/internal/pkg/cron"
	"Gramscope/internal/pkg/scraper"
	"Gramscope/internal/repository"
	"Gramscope/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	accountRepo := repository.NewAccountRepo(db)
	snapshotRepo := repository.NewProfileSnapshotRepo(db)
	rankingRepo := repository.NewRankingRepo(db)

	scraperClient := scraper.NewClient(&cfg.Scraper)

	accountService := service.NewAccountService(accountRepo)
	profileService := service.NewProfileService(snapshotRepo)
	scrapeService := service.NewScrapeService(accountRepo, snapshotRepo, scraperClient)
	rankingService := service.NewRankingService(snapshotRepo, rankingRepo)

	handlers := &api.HandlersGroup{
		AccountHandler: handler.NewAccountHandler(accountService),
		ProfileHandler: handler.NewProfileHandler(profileService),
		ScrapeHandler:  handler.NewScrapeHandler(scrapeService),
		RankingHandler: handler.NewRankingHandler(rankingService),
	}

	router := api.SetupRouter(handlers)

	scrapeJob := job.NewScrapeJob(scrapeService, rankingService)
	cronMgr := cron.NewCronManager(scrapeJob, cfg.Cron.ScrapeSpec)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
