package model

import (
	"time"
)

// ProfileSnapshot 账号画像快照，只追加不更新
type ProfileSnapshot struct {
	ID            uint64 `gorm:"primaryKey"`
	AccountID     uint64 `gorm:"not null;index:idx_profile_snapshots_account"`
	FollowerCount int    `gorm:"type:int;not null"`
	ProfilePicURL string `gorm:"type:text"`
	FullName      string `gorm:"type:varchar(255)"`
	Biography     string `gorm:"type:text"`
	CheckedAt     time.Time `gorm:"index:idx_profile_snapshots_checked_at"`

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

func (ProfileSnapshot) TableName() string {
	return "profile_snapshots"
}
