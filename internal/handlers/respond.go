package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"client-portal/internal/apperrors"
	"client-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const invalidCredentialsMessage = "Invalid project code or password"

var configureBinding sync.Once

// ConfigureBinding makes gin's JSON binding reject unknown fields and report
// validation failures by JSON field name. Safe to call more than once.
func ConfigureBinding() {
	configureBinding.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true

		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(field reflect.StructField) string {
				name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})
		}
	})
}

// badRequest answers a failed ShouldBindJSON.
func badRequest(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation failed",
			Message: strings.Join(formatValidationErrors(err), "; "),
		})
		return
	}

	msg := err.Error()
	if errors.Is(err, io.EOF) {
		msg = "request body is required"
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid request body",
		Message: msg,
	})
}

func formatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msg := fmt.Sprintf("field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("%s (value: %s)", msg, fe.Param())
		}
		messages = append(messages, msg)
	}
	return messages
}

// respondError maps service errors onto status codes. Upstream failures are
// passed through in Message.
func respondError(c *gin.Context, log *logrus.Logger, err error, notFound, failure string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation failed",
			Message: strings.TrimSuffix(err.Error(), ": "+apperrors.ErrValidation.Error()),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: invalidCredentialsMessage})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: notFound})
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error(failure)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   failure,
			Message: err.Error(),
		})
	}
}
