package handlers

import (
	"net/http"

	"contest_backend/internal/openapi"
	"contest_backend/internal/services"
	"contest_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContestHandler struct {
	*BaseHandler
	contestService services.ContestService
}

func NewContestHandler(base *BaseHandler, contestService services.ContestService) *ContestHandler {
	return &ContestHandler{
		BaseHandler:    base,
		contestService: contestService,
	}
}

func (h *ContestHandler) ListContests(c *gin.Context) {
	q := openapi.Query[dto.ListContestsQuery](c)

	resp, err := h.contestService.ListContests(h.GetDB(c), *q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContestHandler) CreateContest(c *gin.Context) {
	req := openapi.Body[dto.CreateContestRequest](c)

	contest, err := h.contestService.CreateContest(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contest)
}

func (h *ContestHandler) GetContest(c *gin.Context) {
	contest, err := h.contestService.GetContest(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contest)
}

func (h *ContestHandler) UpdateContest(c *gin.Context) {
	req := openapi.Body[dto.UpdateContestRequest](c)

	contest, err := h.contestService.UpdateContest(h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contest)
}

func (h *ContestHandler) DeleteContest(c *gin.Context) {
	contest, err := h.contestService.DeleteContest(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contest)
}

func (h *ContestHandler) GetLeaderboard(c *gin.Context) {
	q := openapi.Query[dto.PaginationQuery](c)

	resp, err := h.contestService.GetLeaderboard(h.GetDB(c), c.Param("id"), *q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
