package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gauravw/coachcenter/core/notice"
	"github.com/gauravw/coachcenter/core/user"
)

type noticeApi struct {
	svc *notice.Service
}

func registerNoticeAPI(g *echo.Group, authed echo.MiddlewareFunc, svc *notice.Service) {
	api := noticeApi{svc: svc}

	ng := g.Group("/notices", authed)
	ng.GET("", api.query)
	ng.POST("", api.create)

	admin := roleMiddleware(user.RoleAdmin)
	ng.POST("/:id/pin", api.togglePin, admin)
	ng.DELETE("/:id", api.destroy, admin)
}

func (api *noticeApi) query(ctx echo.Context) error {
	notices, err := api.svc.QueryForDisplay()
	if err != nil {
		return errors.Wrap(err, "querying notices")
	}
	if notices == nil {
		notices = []notice.Notice{}
	}
	return ctx.JSON(http.StatusOK, notices)
}

func (api *noticeApi) create(ctx echo.Context) error {
	var data notice.NewNotice
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewNotice")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	n, err := api.svc.Create(getContextUser(ctx), data)
	if err != nil {
		return errors.Wrap(err, "creating notice")
	}
	return ctx.JSON(http.StatusCreated, n)
}

func (api *noticeApi) togglePin(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	n, err := api.svc.TogglePin(getContextUser(ctx), id)
	if err != nil {
		return errors.Wrap(err, "toggling notice pin")
	}
	return ctx.JSON(http.StatusOK, n)
}

func (api *noticeApi) destroy(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(getContextUser(ctx), id); err != nil {
		return errors.Wrap(err, "deleting notice")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func parseID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
