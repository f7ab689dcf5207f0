package handlers

import (
	"github.com/KAUSTUBH-KULKARNI-K/markethub/pkg/errors"
	"github.com/gin-gonic/gin"
)

// fail finishes the request with one of the API's error shapes. The
// error is also attached to the context so the logging and error
// middleware see what the request died of.
func fail(c *gin.Context, err *errors.AppError) {
	c.Error(err)
	c.JSON(err.Code, gin.H{"error": err.Message})
	c.Abort()
}
