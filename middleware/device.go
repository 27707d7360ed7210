package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const deviceCookie = "jornal_device"

// DeviceID assigns every client a stable identifier cookie. It scopes the
// device-local rating cache the way browser-local storage scoped it in a
// pure front end: one cache per device, regardless of who is signed in.
func DeviceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(deviceCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(deviceCookie, id, 3600*24*365, "/", "", false, true)
		}
		c.Set("deviceId", id)
		c.Next()
	}
}
