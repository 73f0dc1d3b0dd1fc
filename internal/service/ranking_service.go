package service

import (
	"Gramscope/internal/api/dto"
	"Gramscope/internal/model"
	"Gramscope/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"sort"
	"time"

	"github.com/jinzhu/copier"
)

type RankingService interface {
	SnapshotRanking(ctx context.Context) (*dto.RankingSnapshotDTO, error)
	LatestRanking(ctx context.Context) ([]*dto.RankingEntryDTO, error)
	VerifyRanking(ctx context.Context, topN int) (*dto.RankingVerifyDTO, error)
}

type rankingServiceImpl struct {
	snapshotRepo repository.ProfileSnapshotRepo
	rankingRepo  repository.RankingRepo
}

func NewRankingService(snapshotRepo repository.ProfileSnapshotRepo, rankingRepo repository.RankingRepo) RankingService {
	return &rankingServiceImpl{
		snapshotRepo: snapshotRepo,
		rankingRepo:  rankingRepo,
	}
}

// SnapshotRanking 从每个账号的最新快照派生一个完整排名批次并整批落库
func (s *rankingServiceImpl) SnapshotRanking(ctx context.Context) (*dto.RankingSnapshotDTO, error) {
	rows, err := s.snapshotRepo.ListLatestForRanking(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRankableData
	}

	previous, err := s.previousRanks(ctx)
	if err != nil {
		return nil, err
	}

	snapshotDate := time.Now()
	entries := buildRankingBatch(rows, previous, snapshotDate)

	if err = s.rankingRepo.CreateBatch(ctx, entries); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "Ranking snapshot created", "entries", len(entries))

	return &dto.RankingSnapshotDTO{
		Message:      fmt.Sprintf("排名快照已生成，共 %d 条", len(entries)),
		Entries:      len(entries),
		SnapshotDate: snapshotDate,
	}, nil
}

func (s *rankingServiceImpl) LatestRanking(ctx context.Context) ([]*dto.RankingEntryDTO, error) {
	entries, err := s.latestBatch(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RankingEntryDTO, 0, len(entries))
	if err = copier.Copy(&result, &entries); err != nil {
		return nil, err
	}
	return result, nil
}

// VerifyRanking 只读校验最新批次：粉丝数更多的账号排名必须更靠前，
// 同时带回前 topN 条供人工检查
func (s *rankingServiceImpl) VerifyRanking(ctx context.Context, topN int) (*dto.RankingVerifyDTO, error) {
	entries, err := s.latestBatch(ctx)
	if err != nil {
		return nil, err
	}

	violations := make([]*dto.RankingViolationDTO, 0)
	// entries 按 rank 升序，相邻粉丝数出现递增即为冲突
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if cur.FollowerCount > prev.FollowerCount {
			violations = append(violations, &dto.RankingViolationDTO{
				Username:           cur.Username,
				FollowerCount:      cur.FollowerCount,
				Rank:               cur.Rank,
				OtherUsername:      prev.Username,
				OtherFollowerCount: prev.FollowerCount,
				OtherRank:          prev.Rank,
			})
		}
	}

	if topN <= 0 {
		topN = len(entries)
	}
	if topN > len(entries) {
		topN = len(entries)
	}
	top := make([]*dto.RankingEntryDTO, 0, topN)
	if err = copier.Copy(&top, entries[:topN]); err != nil {
		return nil, err
	}

	return &dto.RankingVerifyDTO{
		Consistent: len(violations) == 0,
		Violations: violations,
		Top:        top,
	}, nil
}

func (s *rankingServiceImpl) latestBatch(ctx context.Context) ([]*model.AccountRanking, error) {
	date, err := s.rankingRepo.LatestSnapshotDate(ctx)
	if err != nil {
		return nil, err
	}
	if date == nil {
		return nil, ErrNoRankingBatch
	}
	return s.rankingRepo.ListByDate(ctx, *date)
}

func (s *rankingServiceImpl) previousRanks(ctx context.Context) (map[uint64]int, error) {
	date, err := s.rankingRepo.LatestSnapshotDate(ctx)
	if err != nil {
		return nil, err
	}
	if date == nil {
		return map[uint64]int{}, nil
	}

	entries, err := s.rankingRepo.ListByDate(ctx, *date)
	if err != nil {
		return nil, err
	}

	ranks := make(map[uint64]int, len(entries))
	for _, entry := range entries {
		ranks[entry.AccountID] = entry.Rank
	}
	return ranks, nil
}

// buildRankingBatch 粉丝数倒序、同数按 account_id 升序，rank 从 1 开始连续编号。
// position_change = previous_rank - rank，正值表示名次上升
func buildRankingBatch(rows []*repository.RankingSourceRow, previous map[uint64]int, snapshotDate time.Time) []*model.AccountRanking {
	sorted := make([]*repository.RankingSourceRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].FollowerCount != sorted[j].FollowerCount {
			return sorted[i].FollowerCount > sorted[j].FollowerCount
		}
		return sorted[i].AccountID < sorted[j].AccountID
	})

	entries := make([]*model.AccountRanking, 0, len(sorted))
	for i, row := range sorted {
		entry := &model.AccountRanking{
			AccountID:     row.AccountID,
			Username:      row.Username,
			FollowerCount: row.FollowerCount,
			Rank:          i + 1,
			SnapshotDate:  snapshotDate,
		}
		if prevRank, ok := previous[row.AccountID]; ok {
			change := prevRank - entry.Rank
			entry.PreviousRank = &prevRank
			entry.PositionChange = &change
		}
		entries = append(entries, entry)
	}
	return entries
}
