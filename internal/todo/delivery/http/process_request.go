package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "smart-todo/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	return req, nil
}

// processUpdateReq binds the partial update body and the id path param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

func (h *handler) processIDReq(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errIDRequired
	}
	return id, nil
}
