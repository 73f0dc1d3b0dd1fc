package handler

import (
	"Gramscope/internal/pkg/response"
	"Gramscope/internal/service"

	"github.com/gin-gonic/gin"
)

type ScrapeHandler struct {
	scrapeSvc service.ScrapeService
}

func NewScrapeHandler(scrapeSvc service.ScrapeService) *ScrapeHandler {
	return &ScrapeHandler{scrapeSvc: scrapeSvc}
}

func (s *ScrapeHandler) ScrapeAccounts(c *gin.Context) {
	result, err := s.scrapeSvc.ScrapeAll(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
