package handler

import (
	"net/http"

	"buyit/internal/service"
	"buyit/pkg/response"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler serves the read-only decision history. Decisions are
// recorded through RequestHandler.
type ApprovalHandler struct {
	statisticsService service.StatisticsService
}

func NewApprovalHandler(statisticsService service.StatisticsService) *ApprovalHandler {
	return &ApprovalHandler{statisticsService: statisticsService}
}

func (h *ApprovalHandler) RegisterRoutes(router *gin.RouterGroup) {
	approvals := router.Group("/api/approvals")
	{
		approvals.GET("", h.ListApprovalTrail)
	}
}

// ListApprovalTrail returns the newest decisions with their requester
// @Summary      Approval trail
// @Tags         approvals
// @Produce      json
// @Param        limit  query     int  false  "Number of decisions (default 50)"
// @Success      200    {object}  response.Response{data=[]model.ApprovalTrailEntry}
// @Failure      400    {object}  response.Response
// @Router       /api/approvals [get]
func (h *ApprovalHandler) ListApprovalTrail(c *gin.Context) {
	limit, ok := limitQuery(c)
	if !ok {
		return
	}
	trail, err := h.statisticsService.ApprovalTrail(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, trail))
}
