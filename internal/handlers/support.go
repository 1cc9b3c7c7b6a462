package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/prateek/brandpost-api/pkg/dto"
)

type SupportHandler struct {
	supportService SupportServiceInterface
	validate       *validator.Validate
}

func NewSupportHandler(supportService SupportServiceInterface) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
		validate:       validator.New(),
	}
}

func (h *SupportHandler) List(c *drift.Context) {
	limit, offset := pageParams(c)

	tickets, err := h.supportService.List(context.Background(), c.QueryParam("status"), limit, offset)
	if err != nil {
		c.InternalServerError("failed to list support tickets")
		return
	}

	_ = c.JSON(200, dto.OK(tickets))
}

func (h *SupportHandler) Get(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid ticket id")
		return
	}

	ticket, err := h.supportService.GetByID(context.Background(), id)
	if err != nil {
		c.NotFound("ticket not found")
		return
	}

	_ = c.JSON(200, dto.OK(ticket))
}

func (h *SupportHandler) UpdateStatus(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid ticket id")
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		c.BadRequest("invalid status: " + err.Error())
		return
	}

	ticket, err := h.supportService.UpdateStatus(context.Background(), id, req.Status)
	if err != nil {
		c.NotFound("ticket not found")
		return
	}

	_ = c.JSON(200, dto.OKMessage("ticket updated", ticket))
}
