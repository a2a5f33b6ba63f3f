package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auction-admin/internal/middleware"
	"auction-admin/internal/session"
)

// render merges queued flashes and the current user into the page data.
func render(c *gin.Context, sessions *session.Manager, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = sessions.Flashes(c.Writer, c.Request)
	if user, ok := middleware.UserFromContext(c); ok {
		data["CurrentUser"] = user
	}
	c.HTML(http.StatusOK, name, data)
}

// redirect issues the post-action redirect every mutating route ends with.
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
