package handlers

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/prateek/brandpost-api/pkg/dto"
)

type CustomerHandler struct {
	customerService CustomerServiceInterface
	orderService    OrderServiceInterface
}

func NewCustomerHandler(customerService CustomerServiceInterface, orderService OrderServiceInterface) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		orderService:    orderService,
	}
}

func (h *CustomerHandler) List(c *drift.Context) {
	limit, offset := pageParams(c)

	customers, err := h.customerService.List(context.Background(), c.QueryParam("q"), limit, offset)
	if err != nil {
		c.InternalServerError("failed to list customers")
		return
	}

	_ = c.JSON(200, dto.OK(customers))
}

func (h *CustomerHandler) Get(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid customer id")
		return
	}

	customer, err := h.customerService.GetByID(context.Background(), id)
	if err != nil {
		c.NotFound("customer not found")
		return
	}

	_ = c.JSON(200, dto.OK(customer))
}

func (h *CustomerHandler) ListOrders(c *drift.Context) {
	limit, offset := pageParams(c)

	orders, err := h.orderService.List(context.Background(), c.QueryParam("status"), limit, offset)
	if err != nil {
		c.InternalServerError("failed to list orders")
		return
	}

	_ = c.JSON(200, dto.OK(orders))
}

func (h *CustomerHandler) GetOrder(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid order id")
		return
	}

	order, err := h.orderService.GetByID(context.Background(), id)
	if err != nil {
		c.NotFound("order not found")
		return
	}

	_ = c.JSON(200, dto.OK(order))
}

func pageParams(c *drift.Context) (int, int) {
	limit := 25
	if parsed, err := strconv.Atoi(c.QueryParam("limit")); err == nil && parsed > 0 {
		limit = parsed
	}
	offset := 0
	if parsed, err := strconv.Atoi(c.QueryParam("offset")); err == nil && parsed > 0 {
		offset = parsed
	}
	return limit, offset
}
