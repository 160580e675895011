package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads the surrogate id path parameter. A non-numeric id can never
// match a row, so callers treat a parse failure as not-found.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
