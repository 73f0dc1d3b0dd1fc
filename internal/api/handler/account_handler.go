package handler

import (
	"Gramscope/internal/api/dto"
	"Gramscope/internal/pkg/response"
	"Gramscope/internal/pkg/util"
	"Gramscope/internal/service"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountSvc service.AccountService
}

func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

func (s *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := s.accountSvc.ListAccounts(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"accounts": accounts})
}

func (s *AccountHandler) AddAccounts(c *gin.Context) {
	var req dto.AccountListDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.accountSvc.AddAccounts(c, req.Accounts)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
