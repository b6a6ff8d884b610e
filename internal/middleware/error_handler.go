package middleware

import (
	"fmt"
	"net/http"

	"finance-tracker/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// NewHTTPErrorHandler returns a custom error handler for Echo that formats
// errors as standardized error responses and logs them.
func NewHTTPErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var errorResponse *errors.ErrorResponse
		var httpStatus int

		if echoErr, ok := err.(*echo.HTTPError); ok {
			errorResponse = errors.NewErrorResponse(
				mapHTTPStatusToErrorCode(echoErr.Code),
				traceID,
				errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
			)
			httpStatus = echoErr.Code
		} else if validationErrs, ok := err.(validator.ValidationErrors); ok {
			fieldErrors := make(map[string]string)
			for _, fieldErr := range validationErrs {
				fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
			}
			errorResponse = errors.NewValidationError(fieldErrors, traceID)
			httpStatus = http.StatusBadRequest
		} else {
			errorResponse, _ = errors.WrapSystemError(err, traceID)
			httpStatus = errorResponse.GetHTTPStatus()
		}

		entry := log.WithFields(logrus.Fields{
			"trace_id":   traceID,
			"error_code": errorResponse.Error.Code,
			"status":     httpStatus,
			"path":       c.Request().URL.Path,
			"method":     c.Request().Method,
		}).WithError(err)

		if httpStatus >= 500 {
			entry.Error("http request failed")
		} else {
			entry.Warn("http request rejected")
		}

		if jsonErr := c.JSON(httpStatus, errorResponse); jsonErr != nil {
			log.WithError(jsonErr).Error("failed to write error response")
		}
	}
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.UserNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	default:
		return errors.SystemInternalError
	}
}

func formatValidationError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "currency_code":
		return "must be a supported currency code"
	case "category_type":
		return "must be INCOME or EXPENSE"
	case "type_filter":
		return "must be all, income or expense"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldErr.Tag())
	}
}
