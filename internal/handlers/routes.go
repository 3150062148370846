package handlers

import (
	"net/http"

	"formsd/internal/forms"
	"formsd/internal/logger"

	"github.com/labstack/echo/v4"
)

// Register mounts the form API on e.
func Register(e *echo.Echo, svc *forms.Service, publicURL string) {
	e.GET("/healthz", Health)

	api := e.Group("/api")
	api.GET("/fields", DefaultFields())
	api.POST("/forms", SaveForm(svc))
	api.GET("/forms", ListForms(svc))
	api.GET("/forms/:formId", GetForm(svc))
	api.GET("/forms/:formId/link", ShareLink(svc, publicURL))
	api.POST("/forms/:formId/responses", SubmitResponse(svc))
	api.GET("/forms/:formId/responses", ListResponses(svc))
}

// ErrorHandler renders errors that escape handlers, such as unknown routes or
// recovered panics, in the same envelope the handlers use.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}
	if code >= http.StatusInternalServerError {
		logger.Error("unhandled error", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, ErrorResponse{Error: msg})
}
