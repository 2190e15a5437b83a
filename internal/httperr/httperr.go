package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-calendar/internal/logger"
)

type HTTPError struct {
	Code      string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:      code,
		Message:   message,
		RequestID: c.GetString(logger.ContextRequestID),
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Business writes a BusinessError with the status its code maps to.
func Business(c *gin.Context, be BusinessError) {
	switch be.Code {
	case CodeSalonNotFound:
		NotFound(c, be.Code, "Salão não encontrado.")
	case CodeInvalidDate:
		BadRequest(c, be.Code, "Data inválida.")
	default:
		BadRequest(c, be.Code, "Requisição inválida.")
	}
}
