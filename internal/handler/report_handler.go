package handler

import (
	"net/http"

	"buyit/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/api/reports")
	{
		reports.GET("/export", h.Export)
	}
}

// Export downloads the full report workbook
// @Summary      Export full report
// @Description  One sheet each for requests, approvals, purchase orders and invoices
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  response.Response
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	buf, err := h.reportService.Workbook(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+service.ReportFileName+`"`)
	c.Data(http.StatusOK, service.ReportContentType, buf.Bytes())
}
