package httperr

import "github.com/gin-gonic/gin"

// Abort renders err for a gin handler and stops the handler chain.
func Abort(c *gin.Context, err error) {
	if err == nil {
		return
	}

	_ = c.Error(err)
	c.Abort()
	Write(c.Writer, c.Request, err)
}
