package handlers

import (
	"net/http"

	"contest_backend/internal/openapi"
	"contest_backend/internal/services"
	"contest_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	*BaseHandler
	voteService services.VoteService
}

func NewVoteHandler(base *BaseHandler, voteService services.VoteService) *VoteHandler {
	return &VoteHandler{
		BaseHandler: base,
		voteService: voteService,
	}
}

func (h *VoteHandler) ListVotes(c *gin.Context) {
	q := openapi.Query[dto.ListVotesQuery](c)

	resp, err := h.voteService.ListVotes(h.GetDB(c), *q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VoteHandler) CreateVote(c *gin.Context) {
	req := openapi.Body[dto.CreateVoteRequest](c)

	vote, err := h.voteService.CreateVote(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vote)
}

func (h *VoteHandler) GetVote(c *gin.Context) {
	vote, err := h.voteService.GetVote(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vote)
}

func (h *VoteHandler) UpdateVote(c *gin.Context) {
	req := openapi.Body[dto.UpdateVoteRequest](c)

	vote, err := h.voteService.UpdateVote(h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vote)
}

func (h *VoteHandler) DeleteVote(c *gin.Context) {
	vote, err := h.voteService.DeleteVote(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vote)
}
