package handler

import "github.com/gin-gonic/gin"

// callerID returns the authenticated user's id stashed by the middleware.
func callerID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// callerName returns the authenticated user's display name, if the token
// carried one.
func callerName(c *gin.Context) string {
	if v, exists := c.Get("userName"); exists {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}
