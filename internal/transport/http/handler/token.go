package handler

import "github.com/gin-gonic/gin"

// adminToken extracts the caller's admin token: the x-admin-token
// header wins, the adminToken query parameter is the fallback used by
// the admin panel links.
func adminToken(c *gin.Context) string {
	if t := c.GetHeader("x-admin-token"); t != "" {
		return t
	}
	return c.Query("adminToken")
}
