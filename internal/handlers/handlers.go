// Package handlers binds the HTTP API to the services.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/menstrualmentor/backend/internal/apierror"
	"github.com/menstrualmentor/backend/internal/logger"
)

// requireUserID returns the authenticated user's ID, writing a 401 problem
// when the auth middleware did not set one.
func requireUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return "", false
	}
	return userID, true
}

// writeInternal logs err and answers with a generic 500
func writeInternal(c *gin.Context, msg string, err error) {
	logger.Ctx(c.Request.Context()).Error(msg, logger.Err(err))
	apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
}
