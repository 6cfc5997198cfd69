package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndthien/vexam/internal/apperr"
	"github.com/ndthien/vexam/internal/dto"
)

func respondOK(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Envelope{
		Status:  http.StatusOK,
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondErr maps engine error kinds onto the envelope. Exhausted attempts
// travel as a 200 soft failure; callers inspect success, not the transport
// code.
func respondErr(ctx *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case apperr.Validation:
		status = http.StatusBadRequest
	case apperr.NotFound:
		status = http.StatusNotFound
	case apperr.Conflict:
		status = http.StatusConflict
	case apperr.Exhausted:
		status = http.StatusOK
	}
	ctx.JSON(status, dto.Envelope{
		Status:  status,
		Success: false,
		Message: apperr.MessageOf(err),
		Error:   kind.String(),
	})
}
