package model

import (
	"time"
)

// AccountRanking 一次排名快照中的单条记录，同一 SnapshotDate 构成一个完整批次
type AccountRanking struct {
	ID             uint64 `gorm:"primaryKey"`
	AccountID      uint64 `gorm:"not null"`
	Username       string `gorm:"type:varchar(255);index:idx_account_rankings_username"`
	FollowerCount  int    `gorm:"type:int;not null"`
	Rank           int    `gorm:"column:rank;not null"`
	PreviousRank   *int
	PositionChange *int
	SnapshotDate   time.Time `gorm:"index:idx_account_rankings_snapshot_date"`
}

func (AccountRanking) TableName() string {
	return "account_rankings"
}
