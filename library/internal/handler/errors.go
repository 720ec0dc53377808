package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
)

const internalMessage = "Something went very wrong!"

// HTTPErrorHandler renders every error returned by a handler or middleware
// as {"status":"fail"|"error","message":"..."}.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code, msg := errorStatus(err, c)
	status := model.StatusFail
	if code >= http.StatusInternalServerError {
		status = model.StatusError
		h.log.Error("request failed",
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, model.ErrorResponse{Status: status, Message: msg})
	}
	if err != nil {
		h.log.Error("write error response", zap.Error(err))
	}
}

func errorStatus(err error, c echo.Context) (int, string) {
	var (
		domainErr *errs.Error
		validErr  validator.ValidationErrors
		httpErr   *echo.HTTPError
		pgErr     *pgconn.PgError
	)
	switch {
	case errors.As(err, &domainErr):
		return domainErr.Code, domainErr.Message
	case errors.As(err, &validErr):
		return http.StatusBadRequest, validationMessage(validErr)
	case errors.Is(err, echo.ErrNotFound):
		return http.StatusNotFound, fmt.Sprintf("Can't find %s on this server!", c.Request().URL.RequestURI())
	case errors.As(err, &httpErr):
		if httpErr.Internal != nil {
			return httpErr.Code, fmt.Sprintf("%v: %v", httpErr.Message, httpErr.Internal)
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation:
		return http.StatusBadRequest, fmt.Sprintf("Duplicate field value: %s. Please use another value!", pgErr.Detail)
	}
	return http.StatusInternalServerError, internalMessage
}

func validationMessage(ve validator.ValidationErrors) string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}
	return "Invalid input data. " + strings.Join(msgs, ". ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please provide a valid email"
	case "eqfield":
		return "Passwords are not the same!"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "price":
		return fmt.Sprintf("%s must be a number with at most two decimals", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
