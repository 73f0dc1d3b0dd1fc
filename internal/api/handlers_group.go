package api

import "Gramscope/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AccountHandler *handler.AccountHandler
	ProfileHandler *handler.ProfileHandler
	ScrapeHandler  *handler.ScrapeHandler
	RankingHandler *handler.RankingHandler
}
