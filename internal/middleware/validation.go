package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/registra/internal/app/models/dto"
)

// BindJSON binds and validates a JSON request body. On failure it writes
// the validation error response and reports false.
func BindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
