package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gauravw/coachcenter/core/user"
	"github.com/gauravw/coachcenter/core/video"
)

type videoApi struct {
	svc *video.Service
}

func registerVideoAPI(g *echo.Group, authed echo.MiddlewareFunc, svc *video.Service) {
	api := videoApi{svc: svc}

	vg := g.Group("/videos", authed)
	vg.GET("", api.query)
	vg.POST("", api.create, roleMiddleware(user.RoleTeacher))
}

func (api *videoApi) query(ctx echo.Context) error {
	grouped, err := api.svc.BySubject()
	if err != nil {
		return errors.Wrap(err, "querying videos")
	}
	return ctx.JSON(http.StatusOK, grouped)
}

func (api *videoApi) create(ctx echo.Context) error {
	var data video.NewVideo
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewVideo")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	v, err := api.svc.Create(getContextUser(ctx), data)
	if err != nil {
		return errors.Wrap(err, "creating video")
	}
	return ctx.JSON(http.StatusCreated, v)
}
