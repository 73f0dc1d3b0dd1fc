package service

import (
	"Gramscope/internal/api/dto"
	"Gramscope/internal/model"
	"Gramscope/internal/pkg/consts"
	"Gramscope/internal/pkg/redis"
	"Gramscope/internal/pkg/scraper"
	"Gramscope/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const scrapeLockTTL = 10 * time.Minute

// ProfileFetcher 对外部抓取 API 的抽象，失败时返回哨兵值而不是错误
type ProfileFetcher interface {
	Fetch(ctx context.Context, username string) scraper.ProfileAttributes
}

type ScrapeService interface {
	ScrapeAll(ctx context.Context) (*dto.ScrapeResultDTO, error)
}

type scrapeServiceImpl struct {
	accountRepo  repository.AccountRepo
	snapshotRepo repository.ProfileSnapshotRepo
	fetcher      ProfileFetcher
}

func NewScrapeService(
	accountRepo repository.AccountRepo,
	snapshotRepo repository.ProfileSnapshotRepo,
	fetcher ProfileFetcher,
) ScrapeService {
	return &scrapeServiceImpl{
		accountRepo:  accountRepo,
		snapshotRepo: snapshotRepo,
		fetcher:      fetcher,
	}
}

// ScrapeAll 顺序抓取所有活跃账号。抓取失败的账号跳过并继续，
// 每个成功账号单独落一条快照，运行内不重试
func (s *scrapeServiceImpl) ScrapeAll(ctx context.Context) (*dto.ScrapeResultDTO, error) {
	if redis.Enabled() {
		lockValue := uuid.NewString()
		locked, err := redis.TryLock(ctx, consts.ScrapeRunLock, lockValue, scrapeLockTTL, 1)
		if err != nil {
			return nil, err
		}
		if !locked {
			return nil, ErrScrapeInProgress
		}
		defer redis.UnLock(ctx, consts.ScrapeRunLock, lockValue)
	}

	log.InfoContext(ctx, "Starting scraping process...")

	accounts, err := s.accountRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		log.InfoContext(ctx, "No active accounts found.")
		return &dto.ScrapeResultDTO{Message: "没有活跃账号"}, nil
	}

	log.InfoContext(ctx, "Found active accounts, starting to scrape...", "count", len(accounts))

	processed, skipped := 0, 0
	for _, account := range accounts {
		attrs := s.fetcher.Fetch(ctx, account.Username)

		if attrs.FollowerCount == consts.FollowerCountUnavailable {
			log.WarnContext(ctx, "Skipping account due to scrape failure", "username", account.Username)
			skipped++
			continue
		}

		snapshot := &model.ProfileSnapshot{
			AccountID:     account.ID,
			FollowerCount: attrs.FollowerCount,
			ProfilePicURL: attrs.ProfilePicURL,
			FullName:      attrs.FullName,
			Biography:     attrs.Biography,
			CheckedAt:     time.Now(),
		}
		// 存储故障不同于抓取失败,直接中止本次运行
		if err = s.snapshotRepo.Create(ctx, snapshot); err != nil {
			log.ErrorContext(ctx, "Failed to save profile snapshot", "username", account.Username, "err", err)
			return nil, err
		}

		log.InfoContext(ctx, "Successfully processed account", "username", account.Username, "follower_count", attrs.FollowerCount)
		processed++
	}

	if redis.Enabled() {
		if err = redis.DeleteKey(ctx, consts.ProfilesCacheKey); err != nil {
			log.WarnContext(ctx, "Profiles cache invalidation failed", "err", err)
		}
	}

	log.InfoContext(ctx, "Scraping process completed.", "processed", processed, "skipped", skipped)

	return &dto.ScrapeResultDTO{
		Message:   fmt.Sprintf("抓取完成：成功 %d 个，跳过 %d 个", processed, skipped),
		Processed: processed,
		Skipped:   skipped,
	}, nil
}
