package handler

import (
	"net/http"

	"buyit/internal/model"
	"buyit/internal/service"
	"buyit/pkg/pagination"
	"buyit/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService service.RequestService
}

func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/api/requests")
	{
		requests.POST("", h.SubmitRequest)
		requests.GET("", h.ListRequests)
		requests.GET("/:id", h.GetRequest)
		requests.PUT("/:id/review", h.Review)
		requests.POST("/:id/decision", h.Decide)
	}
}

// SubmitRequest records a new purchase request
// @Summary      Submit purchase request
// @Description  Creates a request in status Submitted
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SubmitRequestDTO  true  "Request"
// @Success      201      {object}  response.Response{data=model.Request}
// @Failure      400      {object}  response.Response
// @Router       /api/requests [post]
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	var req service.SubmitRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	created, err := h.requestService.SubmitRequest(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, created))
}

// ListRequests returns a paginated list of requests, newest first
// @Summary      List requests
// @Tags         requests
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=pagination.Page}
// @Failure      400     {object}  response.Response
// @Router       /api/requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	p := pagination.Parse(c)
	requests, total, err := h.requestService.ListRequests(c.Request.Context(), service.RequestFilter{
		Status: model.RequestStatus(c.Query("status")),
		Page:   p.Page,
		Limit:  p.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, pagination.NewPage(requests, total, p)))
}

// GetRequest returns one request with its approvals and purchase order
// @Summary      Get request
// @Tags         requests
// @Produce      json
// @Param        id   path      int  true  "Request ID"
// @Success      200  {object}  response.Response{data=service.RequestDetail}
// @Failure      404  {object}  response.Response
// @Router       /api/requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.requestService.GetRequest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, detail))
}

// Review moves a submitted request to Pending Approval
// @Summary      Review request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id       path      int               true   "Request ID"
// @Param        payload  body      handler.ActorDTO  false  "Reviewer"
// @Success      200      {object}  response.Response{data=model.Request}
// @Failure      409      {object}  response.Response
// @Router       /api/requests/{id}/review [put]
func (h *RequestHandler) Review(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	actor, ok := bindActor(c)
	if !ok {
		return
	}

	req, err := h.requestService.Review(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, req))
}

// Decide records an approval decision
// @Summary      Decide request
// @Description  Approves or rejects a request; rejections require comments
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Request ID"
// @Param        payload  body      service.DecisionDTO  true  "Decision"
// @Success      201      {object}  response.Response{data=model.Approval}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/requests/{id}/decision [post]
func (h *RequestHandler) Decide(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req service.DecisionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	approval, err := h.requestService.Decide(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, approval))
}
