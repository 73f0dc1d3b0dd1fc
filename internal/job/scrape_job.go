package job

import (
	"Gramscope/internal/pkg/logger"
	"Gramscope/internal/service"
	"context"
	"errors"
	log "log/slog"

	"github.com/google/uuid"
)

// ScrapeJob 定时抓取全部活跃账号并刷新排名快照
type ScrapeJob struct {
	scrapeSvc  service.ScrapeService
	rankingSvc service.RankingService
}

func NewScrapeJob(scrapeSvc service.ScrapeService, rankingSvc service.RankingService) *ScrapeJob {
	return &ScrapeJob{
		scrapeSvc:  scrapeSvc,
		rankingSvc: rankingSvc,
	}
}

func (s *ScrapeJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	result, err := s.scrapeSvc.ScrapeAll(ctx)
	if err != nil {
		if errors.Is(err, service.ErrScrapeInProgress) {
			log.WarnContext(ctx, "Scrape job skipped, previous run still in progress")
			return
		}
		log.ErrorContext(ctx, "Scrape job failed", "err", err)
		return
	}
	log.InfoContext(ctx, "Scrape job finished", "processed", result.Processed, "skipped", result.Skipped)

	if _, err = s.rankingSvc.SnapshotRanking(ctx); err != nil {
		if errors.Is(err, service.ErrNoRankableData) {
			log.WarnContext(ctx, "Ranking snapshot skipped, no snapshot data yet")
			return
		}
		log.ErrorContext(ctx, "Ranking snapshot failed", "err", err)
		return
	}
	log.InfoContext(ctx, "Ranking snapshot refreshed")
}
