package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/KAUSTUBH-KULKARNI-K/markethub/pkg/errors"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware recovers panics and renders errors attached to
// the context. Handlers normally write their AppError themselves; the
// Written check keeps this from double-writing while still rendering
// any error that reached the end of the chain without a response.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Str("stack", stack).
					Msg("Panic recovered")

				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "Internal Server Error",
					"message": "An unexpected error occurred",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if appErr, ok := err.(*errors.AppError); ok {
				if !c.Writer.Written() {
					c.JSON(appErr.Code, gin.H{
						"error": appErr.Message,
					})
				}
				return
			}

			logger.Error().Err(err).Msg("Unhandled request error")

			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal Server Error",
				})
			}
		}
	}
}
