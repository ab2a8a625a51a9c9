package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func listUsersHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePagination(c)
		if err != nil {
			respondError(c, err)
			return
		}
		items, err := users.List(c.Request.Context(), page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "users", items)
	}
}
