package response

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"engagement-srv/pkg/discord"
	pkgErrors "engagement-srv/pkg/errors"
)

// OK writes a 200 response with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		Message: "Success",
		Data:    data,
	})
}

// Created writes a 201 response with the given data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Resp{
		Message: "Success",
		Data:    data,
	})
}

// Error maps an error to an HTTP response. HTTPErrors keep their status code
// and message; anything else is a 500 and is reported to the alert channel.
func Error(c *gin.Context, err error, alertClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	if alertClient != nil {
		go func() {
			_ = alertClient.SendError(context.Background(),
				"Internal server error",
				fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
				err,
			)
		}()
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// ErrorWithMap maps domain sentinels to HTTPErrors before responding.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, alertClient discord.IDiscord) {
	if httpErr, ok := mapping[err]; ok {
		Error(c, httpErr, alertClient)
		return
	}
	Error(c, err, alertClient)
}

// BadRequest writes a 400 response with validation details.
func BadRequest(c *gin.Context, details any) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   "Bad request",
		Errors:    details,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Forbidden writes a 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   "Forbidden",
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, alertClient discord.IDiscord) {
	if alertClient != nil {
		go func() {
			_ = alertClient.SendError(context.Background(),
				"Panic recovered",
				fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
				fmt.Errorf("%v", recovered),
			)
		}()
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
