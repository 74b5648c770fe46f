package handler

import (
	"net/http"
	"strconv"

	"buyit/internal/lifecycle"
	"buyit/internal/service"
	"buyit/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	statsGroup := router.Group("/api/statistics")
	{
		statsGroup.GET("/summary", h.GetSummary)
		statsGroup.GET("/request-status", h.GetRequestStatus)
		statsGroup.GET("/decisions", h.GetDecisions)
		statsGroup.GET("/spend-by-vendor", h.GetSpendByVendor)
		statsGroup.GET("/traceability", h.GetTraceability)
	}
}

// @Summary      Dashboard KPIs
// @Tags         statistics
// @Produce      json
// @Success      200 {object} response.Response{data=model.DashboardSummary}
// @Router       /api/statistics/summary [get]
func (h *StatisticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.statisticsService.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// @Summary      Requests per status
// @Tags         statistics
// @Produce      json
// @Success      200 {object} response.Response{data=[]model.StatusCount}
// @Router       /api/statistics/request-status [get]
func (h *StatisticsHandler) GetRequestStatus(c *gin.Context) {
	counts, err := h.statisticsService.RequestStatusBreakdown(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, counts))
}

// @Summary      Approval decisions
// @Tags         statistics
// @Produce      json
// @Success      200 {object} response.Response{data=[]model.DecisionCount}
// @Router       /api/statistics/decisions [get]
func (h *StatisticsHandler) GetDecisions(c *gin.Context) {
	counts, err := h.statisticsService.ApprovalDecisionBreakdown(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, counts))
}

// @Summary      Spend by vendor
// @Description  Sum of PO totals per vendor across every PO status, largest first
// @Tags         statistics
// @Produce      json
// @Success      200 {object} response.Response{data=[]model.VendorSpend}
// @Router       /api/statistics/spend-by-vendor [get]
func (h *StatisticsHandler) GetSpendByVendor(c *gin.Context) {
	spend, err := h.statisticsService.SpendByVendor(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, spend))
}

// @Summary      Request to PO to invoice traceability
// @Tags         statistics
// @Produce      json
// @Param        limit  query     int  false  "Number of requests (default 30)"
// @Success      200    {object}  response.Response{data=[]model.TraceEntry}
// @Failure      400    {object}  response.Response
// @Router       /api/statistics/traceability [get]
func (h *StatisticsHandler) GetTraceability(c *gin.Context) {
	limit, ok := limitQuery(c)
	if !ok {
		return
	}
	trace, err := h.statisticsService.Traceability(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, trace))
}

func limitQuery(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, lifecycle.InvalidInput("limit must be an integer, got %q", raw))
		return 0, false
	}
	return limit, true
}
