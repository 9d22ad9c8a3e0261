package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	VisitorCookie = "gallery_visitor"
	CtxVisitorID  = "visitor_id"

	visitorMaxAge = 60 * 60 * 24 * 30
)

// VisitorSession gives every browser a stable anonymous id so carts and
// visit flags can be kept per visitor.
func VisitorSession(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(VisitorCookie, id, visitorMaxAge, "/", "", secure, true)
		c.Set(CtxVisitorID, id)
		c.Next()
	}
}
