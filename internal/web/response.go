package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// Response is the envelope for API-style (PUT/DELETE) operations.
// Code 1 means success, -1 failure.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func OK(message string, data any) Response {
	return Response{Code: 1, Message: message, Data: data}
}

func Fail(message string, data any) Response {
	return Response{Code: -1, Message: message, Data: data}
}

// JSONError writes the failure envelope with the HTTP status matching
// the business error kind.
func JSONError(c *gin.Context, err error) {
	var data any
	if fe, ok := AsFieldErrors(err); ok {
		data = fe
	}
	c.JSON(statusFor(err), Fail(err.Error(), data))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		if _, ok := AsFieldErrors(err); ok {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}

// Redirect sends the browser-navigation style result: a redirect to
// target with a human-readable message in the query string.
func Redirect(c *gin.Context, target, message string) {
	u := target
	if message != "" {
		u = target + "?msg=" + url.QueryEscape(message)
	}
	c.Redirect(http.StatusFound, u)
}
