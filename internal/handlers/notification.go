package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/prateek/brandpost-api/pkg/dto"
)

type NotificationHandler struct {
	notificationService NotificationServiceInterface
	validate            *validator.Validate
}

func NewNotificationHandler(notificationService NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		validate:            validator.New(),
	}
}

func (h *NotificationHandler) List(c *drift.Context) {
	limit, offset := pageParams(c)

	notifications, err := h.notificationService.List(context.Background(), limit, offset)
	if err != nil {
		c.InternalServerError("failed to list notifications")
		return
	}

	_ = c.JSON(200, dto.OK(notifications))
}

func (h *NotificationHandler) Create(c *drift.Context) {
	var req dto.CreateNotificationRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		c.BadRequest("invalid notification: " + err.Error())
		return
	}

	notification, err := h.notificationService.Create(context.Background(), req.Title, req.Body, req.ImageURL, req.Audience)
	if err != nil {
		c.InternalServerError("failed to create notification")
		return
	}

	_ = c.JSON(201, dto.OKMessage("notification sent", notification))
}

func (h *NotificationHandler) Delete(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid notification id")
		return
	}

	if err := h.notificationService.Delete(context.Background(), id); err != nil {
		c.InternalServerError("failed to delete notification")
		return
	}

	_ = c.JSON(200, dto.OKMessage("notification deleted", nil))
}
