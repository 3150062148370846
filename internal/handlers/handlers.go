package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"formsd/internal/forms"
	"formsd/internal/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const requestTimeout = 5 * time.Second

var bodyBinder = &echo.DefaultBinder{}

// SaveForm godoc
// @Summary      Create or replace a form
// @Description  Upserts a form definition by id. Fields sent with enabled=false are dropped. A missing id or createdAt is assigned by the server.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        form  body      forms.Form  true  "Form definition"
// @Success      200   {object}  FormEnvelope
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/forms [post]
func SaveForm(svc *forms.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form forms.Form
		if err := bodyBinder.BindBody(c, &form); err != nil {
			return badRequest(c)
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
		defer cancel()

		saved, err := svc.SaveForm(ctx, form)
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(http.StatusOK, FormEnvelope{Success: true, Form: saved})
	}
}

// GetForm godoc
// @Summary      Get a form
// @Tags         forms
// @Produce      json
// @Param        formId  path      string  true  "Form ID"
// @Success      200     {object}  FormEnvelope
// @Failure      404     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /api/forms/{formId} [get]
func GetForm(svc *forms.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
		defer cancel()

		form, err := svc.GetForm(ctx, c.Param("formId"))
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(http.StatusOK, FormEnvelope{Success: true, Form: form})
	}
}

// ListForms godoc
// @Summary      List forms
// @Description  Returns every form in storage order.
// @Tags         forms
// @Produce      json
// @Success      200  {object}  FormsEnvelope
// @Failure      500  {object}  ErrorResponse
// @Router       /api/forms [get]
func ListForms(svc *forms.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
		defer cancel()

		all, err := svc.ListForms(ctx)
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(http.StatusOK, FormsEnvelope{Success: true, Forms: all})
	}
}

// SubmitResponse godoc
// @Summary      Submit a response
// @Description  Appends a response to the form. The server stamps submittedAt. Values are checked against the form's fields only when response validation is enabled.
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        formId    path      string                  true  "Form ID"
// @Param        response  body      map[string]interface{}  true  "Values keyed by field id"
// @Success      200       {object}  MessageEnvelope
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /api/forms/{formId}/responses [post]
func SubmitResponse(svc *forms.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
		defer cancel()

		// unknown forms are reported before the body is looked at
		if _, err := svc.GetForm(ctx, c.Param("formId")); err != nil {
			return fail(c, err)
		}

		var values map[string]any
		if err := bodyBinder.BindBody(c, &values); err != nil {
			return badRequest(c)
		}

		if _, err := svc.SubmitResponse(ctx, c.Param("formId"), values); err != nil {
			return fail(c, err)
		}

		return c.JSON(http.StatusOK, MessageEnvelope{Success: true, Message: "Response saved successfully"})
	}
}

// ListResponses godoc
// @Summary      List responses of a form
// @Description  Responses in submission order. An unknown form id yields an empty list.
// @Tags         responses
// @Produce      json
// @Param        formId  path      string  true  "Form ID"
// @Success      200     {object}  ResponsesEnvelope
// @Failure      500     {object}  ErrorResponse
// @Router       /api/forms/{formId}/responses [get]
func ListResponses(svc *forms.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
		defer cancel()

		responses, err := svc.ListResponses(ctx, c.Param("formId"))
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(http.StatusOK, ResponsesEnvelope{Success: true, Responses: responses})
	}
}

// ShareLink godoc
// @Summary      Build a shareable link
// @Description  Query parameters named after field ids become pre-fill values of the link.
// @Tags         forms
// @Produce      json
// @Param        formId  path      string  true  "Form ID"
// @Success      200     {object}  LinkEnvelope
// @Failure      404     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /api/forms/{formId}/link [get]
func ShareLink(svc *forms.Service, publicURL string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
		defer cancel()

		link, err := svc.ShareLink(ctx, publicURL, c.Param("formId"), c.QueryParams())
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(http.StatusOK, LinkEnvelope{Success: true, Link: link})
	}
}

// DefaultFields godoc
// @Summary      Default field catalog
// @Tags         forms
// @Produce      json
// @Success      200  {object}  FieldsEnvelope
// @Router       /api/fields [get]
func DefaultFields() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, FieldsEnvelope{Success: true, Fields: forms.DefaultFields()})
	}
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func badRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

func fail(c echo.Context, err error) error {
	var verr *forms.ValidationError
	switch {
	case errors.Is(err, forms.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Form not found"})
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message})
	}

	logger.Error("request failed", err,
		zap.String("route", c.Path()),
		zap.String("form_id", c.Param("formId")),
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
