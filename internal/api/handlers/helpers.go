package handlers

import (
	"net/http"
	"strconv"

	"rental-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id path segment as a positive integer. A zero return
// means the response was already written.
func idParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name+" parameter", err)
		return 0, false
	}
	return id, true
}
