package handler

import (
	"dealership/pkg/apperror"
	"dealership/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError translates a service error kind into the HTTP status the API
// surfaces and wraps the message in the standard envelope.
func respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	c.JSON(status, response.Error(status, err.Error()))
}
