package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/user"

	metricsvc "github.com/gauravw/coachcenter/services/metrics"
)

type sessionApi struct {
	session *user.Session
}

func registerSessionAPI(g *echo.Group, session *user.Session) {
	api := sessionApi{session: session}

	sg := g.Group("/session")
	sg.POST("/login", api.login)
	sg.POST("/logout", api.logout)
	sg.GET("", api.current)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (lr *LoginRequest) Validate() error {
	lr.Username = core.CleanString(lr.Username, true /* lower */)
	return core.Validate.Struct(lr)
}

func (api *sessionApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.session.Login(data.Username, data.Password)
	if err != nil {
		if err == user.ErrInvalidCredentials {
			metricsvc.LoginsTotal.WithLabelValues("failure").Inc()
			return core.NewValidationError(err)
		}
		return errors.Wrap(err, "logging in")
	}
	metricsvc.LoginsTotal.WithLabelValues("success").Inc()
	return ctx.JSON(http.StatusOK, usr)
}

func (api *sessionApi) logout(ctx echo.Context) error {
	api.session.Logout()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *sessionApi) current(ctx echo.Context) error {
	usr, ok := api.session.Current()
	if !ok {
		return errUnauthorized
	}
	return ctx.JSON(http.StatusOK, usr)
}
