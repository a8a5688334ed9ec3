package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/analysis"
	pkgErrors "smart-todo/pkg/errors"
)

func (h *handler) processAnalyzeReq(c *gin.Context) (analysis.AnalyzeInput, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return analysis.AnalyzeInput{}, pkgErrors.NewBindingError(err)
	}
	if err := req.validate(); err != nil {
		return analysis.AnalyzeInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput(h.parser)
	if err != nil {
		return analysis.AnalyzeInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return input, nil
}

func (h *handler) processPeriodReq(c *gin.Context) (periodReq, error) {
	var req periodReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}
