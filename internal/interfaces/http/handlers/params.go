package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/shared/errors"
)

// parseIDParam reads a numeric path parameter and rejects anything that is
// not a positive integer.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid "+name+" parameter", raw)
	}
	return uint(id), nil
}
