package handler

import (
	"net/http"
	"strconv"

	"buyit/internal/lifecycle"
	"buyit/pkg/response"

	"github.com/gin-gonic/gin"
)

// statusByCode maps lifecycle error kinds onto HTTP statuses.
var statusByCode = map[string]int{
	"INVALID_INPUT":         http.StatusBadRequest,
	"INVALID_TRANSITION":    http.StatusConflict,
	"MISSING_JUSTIFICATION": http.StatusUnprocessableEntity,
	"DUPLICATE_PO":          http.StatusConflict,
	"DUPLICATE_PO_NUMBER":   http.StatusConflict,
	"NOT_FOUND":             http.StatusNotFound,
	"INTERNAL":              http.StatusInternalServerError,
}

// ActorDTO names who performs a status-only transition.
type ActorDTO struct {
	Actor string `json:"actor" example:"Shalini"`
}

func respondError(c *gin.Context, err error) {
	code := lifecycle.Code(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = "internal error"
	}
	c.JSON(status, response.ErrorWithCode(status, code, msg))
}

func badPayload(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.ErrorWithCode(http.StatusBadRequest, "INVALID_INPUT", "Invalid request payload: "+err.Error()))
}

// idParam reads a positive numeric path parameter, writing a 400 if it is not one.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorWithCode(http.StatusBadRequest, "INVALID_INPUT", "invalid "+name+": "+c.Param(name)))
		return 0, false
	}
	return uint(id), true
}

// bindActor reads an optional actor body; an empty body means an anonymous actor.
func bindActor(c *gin.Context) (string, bool) {
	var req ActorDTO
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badPayload(c, err)
			return "", false
		}
	}
	return req.Actor, true
}
