package handler

import (
	"net/http"

	"buyit/internal/model"
	"buyit/internal/service"
	"buyit/pkg/pagination"
	"buyit/pkg/response"

	"github.com/gin-gonic/gin"
)

type PurchaseOrderHandler struct {
	poService service.PurchaseOrderService
}

func NewPurchaseOrderHandler(poService service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{poService: poService}
}

func (h *PurchaseOrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	byRequest := router.Group("/api/requests/:id/purchase-order")
	{
		byRequest.POST("", h.CreatePO)
		byRequest.PUT("/send", h.MarkSent)
		byRequest.PUT("/close", h.Close)
	}

	router.GET("/api/purchase-orders", h.ListPurchaseOrders)
}

// CreatePO issues the purchase order of an approved request
// @Summary      Create purchase order
// @Description  Creates the single PO of an approved request. A blank po_number is derived from the request id.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Request ID"
// @Param        payload  body      service.CreatePODTO  true  "Purchase order"
// @Success      201      {object}  response.Response{data=model.PurchaseOrder}
// @Failure      409      {object}  response.Response
// @Router       /api/requests/{id}/purchase-order [post]
func (h *PurchaseOrderHandler) CreatePO(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req service.CreatePODTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	po, err := h.poService.CreatePO(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, po))
}

// MarkSent marks the request's purchase order as sent to the vendor
// @Summary      Send purchase order
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        id       path      int               true   "Request ID"
// @Param        payload  body      handler.ActorDTO  false  "Actor"
// @Success      200      {object}  response.Response{data=model.PurchaseOrder}
// @Failure      409      {object}  response.Response
// @Router       /api/requests/{id}/purchase-order/send [put]
func (h *PurchaseOrderHandler) MarkSent(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	actor, ok := bindActor(c)
	if !ok {
		return
	}

	po, err := h.poService.MarkSent(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, po))
}

// Close closes a sent purchase order and its request
// @Summary      Close purchase order
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        id       path      int               true   "Request ID"
// @Param        payload  body      handler.ActorDTO  false  "Actor"
// @Success      200      {object}  response.Response{data=model.PurchaseOrder}
// @Failure      409      {object}  response.Response
// @Router       /api/requests/{id}/purchase-order/close [put]
func (h *PurchaseOrderHandler) Close(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	actor, ok := bindActor(c)
	if !ok {
		return
	}

	po, err := h.poService.Close(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, po))
}

// ListPurchaseOrders returns a paginated list of purchase orders
// @Summary      List purchase orders
// @Tags         purchase-orders
// @Produce      json
// @Param        status  query     string  false  "Filter by status (Created, Sent, Closed)"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=pagination.Page}
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	p := pagination.Parse(c)
	orders, total, err := h.poService.ListPurchaseOrders(c.Request.Context(), service.POFilter{
		Status: model.POStatus(c.Query("status")),
		Page:   p.Page,
		Limit:  p.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, pagination.NewPage(orders, total, p)))
}
