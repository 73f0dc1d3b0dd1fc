package repository

import (
	"Gramscope/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type RankingRepo interface {
	CreateBatch(ctx context.Context, entries []*model.AccountRanking) error
	LatestSnapshotDate(ctx context.Context) (*time.Time, error)
	ListByDate(ctx context.Context, date time.Time) ([]*model.AccountRanking, error)
}

type rankingRepoImpl struct {
	db *gorm.DB
}

func NewRankingRepo(db *gorm.DB) RankingRepo {
	return &rankingRepoImpl{db: db}
}

// CreateBatch 整批写入一个事务，保证一次排名快照的原子性
func (s *rankingRepoImpl) CreateBatch(ctx context.Context, entries []*model.AccountRanking) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entries).Error
	})
}

func (s *rankingRepoImpl) LatestSnapshotDate(ctx context.Context) (*time.Time, error) {
	var date *time.Time
	err := s.db.WithContext(ctx).
		Model(&model.AccountRanking{}).
		Select("MAX(snapshot_date)").
		Scan(&date).Error
	if err != nil {
		return nil, err
	}
	return date, nil
}

func (s *rankingRepoImpl) ListByDate(ctx context.Context, date time.Time) ([]*model.AccountRanking, error) {
	entries := make([]*model.AccountRanking, 0)
	result := s.db.WithContext(ctx).
		Where("snapshot_date = ?", date).
		Order("rank ASC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}
