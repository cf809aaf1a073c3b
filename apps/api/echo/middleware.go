package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/gauravw/coachcenter/core/user"
)

var contextUserKey = "user"

// authRequiredMiddleware rejects requests while the session is anonymous
// and stashes the bound identity in the request context otherwise.
func authRequiredMiddleware(session *user.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, ok := session.Current()
			if !ok {
				return errUnauthorized
			}
			ctx.Set(contextUserKey, usr)
			return next(ctx)
		}
	}
}

// roleMiddleware only admits identities holding one of the given roles.
// The services re-check the permission gate; this keeps refused requests
// from reaching them at all.
func roleMiddleware(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr := getContextUser(ctx)
			for _, role := range roles {
				if usr.Role == role {
					return next(ctx)
				}
			}
			return errHttpForbidden
		}
	}
}

// getContextUser returns the identity stashed by authRequiredMiddleware.
// Anonymous requests never reach handlers that call this.
func getContextUser(ctx echo.Context) user.User {
	usr, _ := ctx.Get(contextUserKey).(user.User)
	return usr
}
