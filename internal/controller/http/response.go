package http

import (
	"motorhub/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps a usecase error onto its HTTP status through the
// error's kind, keeping handlers free of string matching.
func respondError(c *gin.Context, err error) {
	c.JSON(apperr.StatusOf(err), gin.H{
		"error": err.Error(),
		"code":  string(apperr.KindOf(err)),
	})
}
