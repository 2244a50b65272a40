package handlers

import (
	"net/http"

	"contest_backend/internal/openapi"
	"contest_backend/internal/services"
	"contest_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AwardHandler struct {
	*BaseHandler
	awardService services.AwardService
}

func NewAwardHandler(base *BaseHandler, awardService services.AwardService) *AwardHandler {
	return &AwardHandler{
		BaseHandler:  base,
		awardService: awardService,
	}
}

func (h *AwardHandler) ListAwards(c *gin.Context) {
	q := openapi.Query[dto.ListAwardsQuery](c)

	resp, err := h.awardService.ListAwards(h.GetDB(c), *q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListContestAwards - GET /contests/{contestId}/awards, contestId из пути важнее query
func (h *AwardHandler) ListContestAwards(c *gin.Context) {
	q := *openapi.Query[dto.ListAwardsQuery](c)
	q.ContestID = c.Param("contestId")

	resp, err := h.awardService.ListAwards(h.GetDB(c), q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AwardHandler) CreateAward(c *gin.Context) {
	req := openapi.Body[dto.CreateAwardRequest](c)

	award, err := h.awardService.CreateAward(h.GetDB(c), c.Param("contestId"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, award)
}

func (h *AwardHandler) GetAward(c *gin.Context) {
	award, err := h.awardService.GetAward(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, award)
}

func (h *AwardHandler) UpdateAward(c *gin.Context) {
	req := openapi.Body[dto.UpdateAwardRequest](c)

	award, err := h.awardService.UpdateAward(h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, award)
}

func (h *AwardHandler) DeleteAward(c *gin.Context) {
	award, err := h.awardService.DeleteAward(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, award)
}
