package dto

import "time"

// ProfileDTO 活跃账号的最新画像快照
type ProfileDTO struct {
	Username      string    `json:"username"`
	FollowerCount int       `json:"follower_count"`
	ProfilePicURL string    `json:"profile_pic_url"`
	FullName      string    `json:"full_name"`
	Biography     string    `json:"biography"`
	CheckedAt     time.Time `json:"checked_at"`
}

// ScrapeResultDTO 一次抓取运行的汇总
type ScrapeResultDTO struct {
	Message   string `json:"message"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
}
