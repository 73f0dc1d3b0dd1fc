package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrScrapeInProgress = errors.New("抓取任务正在进行中")
	ErrNoRankableData   = errors.New("没有可用于排名的快照数据")
	ErrNoRankingBatch   = errors.New("还没有任何排名快照")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrScrapeInProgress: Conflict,
	ErrNoRankableData:   NotFound,
	ErrNoRankingBatch:   NotFound,
	UnExpectedError:     InternalServerError,
}
