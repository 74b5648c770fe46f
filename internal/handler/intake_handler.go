package handler

import (
	"net/http"

	"buyit/internal/intake"
	"buyit/pkg/response"

	"github.com/gin-gonic/gin"
)

type IntakeHandler struct {
	extractor *intake.Extractor
}

func NewIntakeHandler(extractor *intake.Extractor) *IntakeHandler {
	return &IntakeHandler{extractor: extractor}
}

type ExtractDTO struct {
	Text string `json:"text" example:"Need 20 Figma licenses for the design team. Budget $8,000."`
}

func (h *IntakeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/intake/extract", h.Extract)
}

// Extract pre-fills request fields from free text
// @Summary      Extract request fields
// @Description  Best-effort keyword extraction; the result is a form pre-fill, not a request
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        payload  body      handler.ExtractDTO  true  "Free text"
// @Success      200      {object}  response.Response{data=intake.Fields}
// @Failure      400      {object}  response.Response
// @Router       /api/intake/extract [post]
func (h *IntakeHandler) Extract(c *gin.Context) {
	var req ExtractDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.extractor.Extract(req.Text)))
}
