package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes data as JSON. Layouts are per salon and change with every
// booking, so shared caches must not keep them.
func OK(c *gin.Context, data any) {
	c.Header("Cache-Control", "private, no-store")
	c.JSON(http.StatusOK, data)
}
