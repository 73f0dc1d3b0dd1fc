package handler

import (
	"Gramscope/internal/pkg/response"
	"Gramscope/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

func (s *ProfileHandler) GetProfiles(c *gin.Context) {
	profiles, err := s.profileSvc.ListLatestProfiles(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"profiles": profiles})
}
