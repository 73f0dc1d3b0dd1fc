package dto

import "time"

// RankingEntryDTO 排名批次中的单条记录
type RankingEntryDTO struct {
	AccountID      uint64    `json:"account_id"`
	Username       string    `json:"username"`
	FollowerCount  int       `json:"follower_count"`
	Rank           int       `json:"rank"`
	PreviousRank   *int      `json:"previous_rank"`
	PositionChange *int      `json:"position_change"`
	SnapshotDate   time.Time `json:"snapshot_date"`
}

// RankingSnapshotDTO 一次排名快照的汇总
type RankingSnapshotDTO struct {
	Message      string    `json:"message"`
	Entries      int       `json:"entries"`
	SnapshotDate time.Time `json:"snapshot_date"`
}

// RankingViolationDTO 粉丝数更多但排名更靠后的冲突对
type RankingViolationDTO struct {
	Username      string `json:"username"`
	FollowerCount int    `json:"follower_count"`
	Rank          int    `json:"rank"`

	OtherUsername      string `json:"other_username"`
	OtherFollowerCount int    `json:"other_follower_count"`
	OtherRank          int    `json:"other_rank"`
}

// RankingVerifyDTO 最新批次的一致性校验结果
type RankingVerifyDTO struct {
	Consistent bool                   `json:"consistent"`
	Violations []*RankingViolationDTO `json:"violations"`
	Top        []*RankingEntryDTO     `json:"top"`
}
