package repository

import (
	"Gramscope/internal/model"
	"Gramscope/internal/pkg/consts"
	"context"
	"time"

	"gorm.io/gorm"
)

// LatestProfileRow 活跃账号的最新一次快照（按账号去重）
type LatestProfileRow struct {
	AccountID     uint64    `gorm:"column:account_id"`
	Username      string    `gorm:"column:username"`
	FollowerCount int       `gorm:"column:follower_count"`
	ProfilePicURL string    `gorm:"column:profile_pic_url"`
	FullName      string    `gorm:"column:full_name"`
	Biography     string    `gorm:"column:biography"`
	CheckedAt     time.Time `gorm:"column:checked_at"`
}

// RankingSourceRow 排名输入行：每个账号的最新粉丝数
type RankingSourceRow struct {
	AccountID     uint64 `gorm:"column:account_id"`
	Username      string `gorm:"column:username"`
	FollowerCount int    `gorm:"column:follower_count"`
}

type ProfileSnapshotRepo interface {
	Create(ctx context.Context, snapshot *model.ProfileSnapshot) error
	ListLatestByAccount(ctx context.Context) ([]*LatestProfileRow, error)
	ListLatestForRanking(ctx context.Context) ([]*RankingSourceRow, error)
}

type profileSnapshotRepoImpl struct {
	db *gorm.DB
}

func NewProfileSnapshotRepo(db *gorm.DB) ProfileSnapshotRepo {
	return &profileSnapshotRepoImpl{db: db}
}

func (s *profileSnapshotRepoImpl) Create(ctx context.Context, snapshot *model.ProfileSnapshot) error {
	return s.db.WithContext(ctx).Create(snapshot).Error
}

// ListLatestByAccount 用 DISTINCT ON 取每个账号 checked_at 最大的一条，再按粉丝数倒序
func (s *profileSnapshotRepoImpl) ListLatestByAccount(ctx context.Context) ([]*LatestProfileRow, error) {
	rows := make([]*LatestProfileRow, 0)
	err := s.db.WithContext(ctx).Raw(`
		SELECT a.id AS account_id, a.username, p.follower_count, p.profile_pic_url, p.full_name, p.biography, p.checked_at
		FROM accounts a
		JOIN (
			SELECT DISTINCT ON (account_id) account_id, follower_count, profile_pic_url, full_name, biography, checked_at
			FROM profile_snapshots
			ORDER BY account_id, checked_at DESC
		) p ON a.id = p.account_id
		WHERE a.status = ?
		ORDER BY p.follower_count DESC`, consts.AccountStatusActive).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListLatestForRanking 排名输入不区分账号状态，没有快照的账号自然被 JOIN 排除。
// 粉丝数相同按 account_id 升序，保证排名结果稳定
func (s *profileSnapshotRepoImpl) ListLatestForRanking(ctx context.Context) ([]*RankingSourceRow, error) {
	rows := make([]*RankingSourceRow, 0)
	err := s.db.WithContext(ctx).Raw(`
		SELECT a.id AS account_id, a.username, p.follower_count
		FROM accounts a
		JOIN (
			SELECT DISTINCT ON (account_id) account_id, follower_count
			FROM profile_snapshots
			ORDER BY account_id, checked_at DESC
		) p ON a.id = p.account_id
		ORDER BY p.follower_count DESC, a.id ASC`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
