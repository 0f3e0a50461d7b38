package middleware

import (
	"strconv"

	"ifphub/helper"
	"ifphub/services"
	"ifphub/session"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = &helper.HTTPHelper{}

// RequireCreator gates an endpoint behind the creator rol set. The
// session travels as uid/sig query params; a mismatch or an
// unresolvable rol aborts the request (fail closed).
func RequireCreator(authService services.AuthService, creatorRoles []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uidRaw := c.Query("uid")
		sig := c.Query("sig")

		uid, err := strconv.ParseUint(uidRaw, 10, 32)
		if uidRaw == "" || sig == "" || err != nil || uid == 0 {
			HTTPHelper.SendErrorMessage(c, 401, "Sesion invalida. Inicia sesion de nuevo.")
			c.Abort()
			return
		}

		sess := session.NewContext(uint(uid), sig)
		rol, authErr := authService.Authorize(sess, uint(uid), sig, creatorRoles)
		if authErr != nil {
			HTTPHelper.SendError(c, authErr)
			c.Abort()
			return
		}

		c.Set("uid", uint(uid))
		c.Set("rol", rol)
		c.Next()
	}
}
