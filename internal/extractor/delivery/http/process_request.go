package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "smart-todo/pkg/errors"
)

func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	return req, nil
}
