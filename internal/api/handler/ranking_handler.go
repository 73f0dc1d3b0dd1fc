package handler

import (
	"Gramscope/internal/pkg/consts"
	"Gramscope/internal/pkg/response"
	"Gramscope/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RankingHandler struct {
	rankingSvc service.RankingService
}

func NewRankingHandler(rankingSvc service.RankingService) *RankingHandler {
	return &RankingHandler{rankingSvc: rankingSvc}
}

func (s *RankingHandler) SnapshotRanking(c *gin.Context) {
	result, err := s.rankingSvc.SnapshotRanking(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *RankingHandler) GetLatestRanking(c *gin.Context) {
	entries, err := s.rankingSvc.LatestRanking(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"ranking": entries})
}

func (s *RankingHandler) VerifyRanking(c *gin.Context) {
	topStr := c.DefaultQuery("top", strconv.Itoa(consts.DefaultRankingTopN))
	top, err := strconv.Atoi(topStr)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.rankingSvc.VerifyRanking(c, top)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
