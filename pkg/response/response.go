package response

import (
	"fmt"
	"net/http"

	"fluency-srv/pkg/discord"
	pkgErrors "fluency-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the payload as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 response with the payload as the body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error renders an error as `{"message": ...}`. HTTPError picks its own
// status code; anything else is a 500 carrying the error detail, and is
// reported to the alert webhook when one is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		if httpErr.Code >= http.StatusInternalServerError {
			notify(c, d, httpErr.Message)
		}
		c.JSON(httpErr.Code, ErrResp{Message: httpErr.Message})
		return
	}

	msg := err.Error()
	if msg == "" {
		msg = "Internal Server Error"
	}
	notify(c, d, msg)
	c.JSON(http.StatusInternalServerError, ErrResp{Message: msg})
}

// PanicError renders a recovered panic as a 500 and alerts the webhook.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	notify(c, d, fmt.Sprintf("panic: %v", recovered))
	c.JSON(http.StatusInternalServerError, ErrResp{Message: "Internal Server Error"})
}

func notify(c *gin.Context, d discord.IDiscord, detail string) {
	if d == nil {
		return
	}
	ctx := c.Request.Context()
	title := fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path)
	_ = d.SendError(ctx, title, detail)
}
