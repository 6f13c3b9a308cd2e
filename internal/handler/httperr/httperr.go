package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps the original error on the context for the logging
// middleware and answers with a JSON body.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithText is the plain text counterpart used by the checkout
// endpoints, whose clients never parse JSON.
func AbortWithText(c *gin.Context, status int, err error, body string) {
	if err != nil {
		_ = c.Error(err)
	}
	c.String(status, body)
	c.Abort()
}
