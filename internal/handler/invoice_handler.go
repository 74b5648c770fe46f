package handler

import (
	"net/http"

	"buyit/internal/model"
	"buyit/internal/service"
	"buyit/pkg/pagination"
	"buyit/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/api/invoices")
	{
		invoices.POST("", h.SubmitInvoice)
		invoices.GET("", h.ListInvoices)
	}
}

// SubmitInvoice matches an invoice against its purchase order and records it
// @Summary      Submit invoice
// @Description  Records the invoice with a Matched or Exception verdict. The verdict is final.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SubmitInvoiceDTO  true  "Invoice"
// @Success      201      {object}  response.Response{data=service.InvoiceResult}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/invoices [post]
func (h *InvoiceHandler) SubmitInvoice(c *gin.Context) {
	var req service.SubmitInvoiceDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	result, err := h.invoiceService.SubmitInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// ListInvoices returns a paginated list of invoices, optionally filtered by match status
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        status  query     string  false  "Filter by match status (Matched, Exception)"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=pagination.Page}
// @Failure      400     {object}  response.Response
// @Router       /api/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	p := pagination.Parse(c)
	invoices, total, err := h.invoiceService.ListInvoices(c.Request.Context(), service.InvoiceFilter{
		Status: model.MatchStatus(c.Query("status")),
		Page:   p.Page,
		Limit:  p.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, pagination.NewPage(invoices, total, p)))
}
