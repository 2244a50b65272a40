package handlers

import (
	"net/http"

	"contest_backend/internal/openapi"
	"contest_backend/internal/services"
	"contest_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ParticipationHandler struct {
	*BaseHandler
	participationService services.ParticipationService
}

func NewParticipationHandler(base *BaseHandler, participationService services.ParticipationService) *ParticipationHandler {
	return &ParticipationHandler{
		BaseHandler:          base,
		participationService: participationService,
	}
}

func (h *ParticipationHandler) ListParticipations(c *gin.Context) {
	q := openapi.Query[dto.ListParticipationsQuery](c)

	resp, err := h.participationService.ListParticipations(h.GetDB(c), *q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ParticipationHandler) CreateParticipation(c *gin.Context) {
	req := openapi.Body[dto.CreateParticipationRequest](c)

	p, err := h.participationService.CreateParticipation(h.GetDB(c), c.Param("contestId"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ParticipationHandler) GetParticipation(c *gin.Context) {
	p, err := h.participationService.GetParticipation(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ParticipationHandler) UpdateParticipation(c *gin.Context) {
	req := openapi.Body[dto.UpdateParticipationRequest](c)

	p, err := h.participationService.UpdateParticipation(h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ParticipationHandler) DeleteParticipation(c *gin.Context) {
	p, err := h.participationService.DeleteParticipation(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
