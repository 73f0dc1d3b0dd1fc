package dto

import "time"

// AccountDTO 账号
type AccountDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountUpsertDTO 新增/更新账号请求项，status 缺省为 active
type AccountUpsertDTO struct {
	Username string `json:"username" validate:"required,max=255"`
	Status   string `json:"status" validate:"omitempty,max=50"`
}

// AccountListDTO 批量账号请求体
type AccountListDTO struct {
	Accounts []*AccountUpsertDTO `json:"accounts" validate:"required,min=1,dive"`
}

// SkippedAccountDTO 未新增的账号及原因
type SkippedAccountDTO struct {
	Username string `json:"username"`
	Reason   string `json:"reason"`
}

// AddAccountsResultDTO 批量新增结果
type AddAccountsResultDTO struct {
	Message string               `json:"message"`
	Added   []string             `json:"added"`
	Skipped []*SkippedAccountDTO `json:"skipped"`
}
