package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/zeyadesperado/GymMaster/models"
	"github.com/zeyadesperado/GymMaster/services"
)

type orderItemRequest struct {
	Quantity *decimal.Decimal `json:"quantity" binding:"required"`
}

type orderRequest struct {
	OrderStatus   *models.OrderStatus `json:"order_status" binding:"omitempty,oneof=Pending Done"`
	TotalQuantity *int                `json:"total_quantity" binding:"omitempty,min=0"`
	TotalPrice    *decimal.Decimal    `json:"total_price"`
	OrderItems    []orderItemRequest  `json:"order_items" binding:"omitempty,dive"`
}

func (r orderRequest) input() services.OrderInput {
	in := services.OrderInput{
		OrderStatus:   r.OrderStatus,
		TotalQuantity: r.TotalQuantity,
		TotalPrice:    r.TotalPrice,
	}
	for _, it := range r.OrderItems {
		in.OrderItems = append(in.OrderItems, services.OrderItemUpdate{Quantity: *it.Quantity})
	}
	return in
}

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]services.OrderView, 0, len(orders))
	for i := range orders {
		out = append(out, services.NewOrderView(&orders[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (oc *OrderController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := oc.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.NewOrderView(order))
}

// Create ignores order_items; they are added by update or directly.
func (oc *OrderController) Create(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := req.input()
	in.OrderItems = nil
	order, err := oc.Svc.Create(c.Request.Context(), userIDFromCtx(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, services.NewOrderView(order))
}

// PUT|PATCH /api/shop/orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := oc.Svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.NewOrderView(order))
}

func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := oc.Svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type OrderItemController struct {
	Svc *services.OrderItemService
}

func NewOrderItemController(svc *services.OrderItemService) *OrderItemController {
	return &OrderItemController{Svc: svc}
}

func (ic *OrderItemController) List(c *gin.Context) {
	items, err := ic.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]services.OrderItemView, 0, len(items))
	for i := range items {
		out = append(out, services.NewOrderItemView(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (ic *OrderItemController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := ic.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.NewOrderItemView(item))
}

func (ic *OrderItemController) Create(c *gin.Context) {
	var in services.OrderItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := ic.Svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, services.NewOrderItemView(item))
}

func (ic *OrderItemController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.OrderItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := ic.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.NewOrderItemView(item))
}

func (ic *OrderItemController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ic.Svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
