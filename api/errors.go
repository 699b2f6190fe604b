package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// statusFor maps every error kind to its HTTP status and response code.
func statusFor(kind domain.Kind) (int, string) {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound, "NOT_FOUND"
	case domain.KindForbidden:
		return http.StatusForbidden, "FORBIDDEN"
	case domain.KindUnauthorized:
		return http.StatusForbidden, "UNAUTHORIZED"
	case domain.KindStorage:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func respondError(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	status, code := statusFor(kind)
	_ = c.Error(err)

	message := "Internal server error"
	var domainErr *domain.Error
	if kind != domain.KindStorage && errors.As(err, &domainErr) {
		message = domainErr.Reason
	}
	if kind == domain.KindStorage {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("storage failure")
	}

	c.AbortWithStatusJSON(status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

func respondValidation(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Error: errorBody{Code: "VALIDATION_ERROR", Message: message},
	})
}
