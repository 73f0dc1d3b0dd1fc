package model

import (
	"time"
)

type Account struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_username"`
	Status    string `gorm:"type:varchar(50);default:'active'"`
	CreatedAt time.Time
}

func (Account) TableName() string {
	return "accounts"
}
