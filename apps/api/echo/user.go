package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/user"
)

type userApi struct {
	svc *user.Service
}

func registerUserAPI(g *echo.Group, authed echo.MiddlewareFunc, svc *user.Service) {
	api := userApi{svc: svc}

	ug := g.Group("/users", authed, roleMiddleware(user.RoleAdmin))
	ug.GET("", api.query)
	ug.POST("", api.create)
	ug.PUT("/:id", api.update)
}

func (api *userApi) query(ctx echo.Context) error {
	var users []user.User
	var err error
	switch role := ctx.QueryParam("role"); role {
	case "":
		users, err = api.svc.QueryAll()
	case user.RoleStudent:
		users, err = api.svc.Students()
	case user.RoleTeacher:
		users, err = api.svc.Teachers()
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role filter")
	}
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	if users == nil {
		users = []user.User{}
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *userApi) create(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.svc.Create(getContextUser(ctx), data)
	if err != nil {
		if errors.Cause(err) == user.ErrUsernameExists {
			return core.NewValidationError(err, core.FieldError{Field: "username", Error: err.Error()})
		}
		return errors.Wrap(err, "creating user")
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *userApi) update(ctx echo.Context) error {
	var data user.UpdateUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateUser")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.svc.Update(getContextUser(ctx), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating user")
	}
	return ctx.JSON(http.StatusOK, usr)
}
