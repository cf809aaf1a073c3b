package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gauravw/coachcenter/core/fee"
	"github.com/gauravw/coachcenter/core/user"
)

type feeApi struct {
	svc *fee.Service
}

func registerFeeAPI(g *echo.Group, authed echo.MiddlewareFunc, svc *fee.Service) {
	api := feeApi{svc: svc}

	fg := g.Group("/fees", authed)
	admin := roleMiddleware(user.RoleAdmin)
	fg.GET("", api.query, admin)
	fg.GET("/summary", api.summary, admin)
	fg.GET("/:studentID", api.get)
	fg.PUT("/:studentID", api.update, admin)
}

func (api *feeApi) query(ctx echo.Context) error {
	fees, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying fees")
	}
	return ctx.JSON(http.StatusOK, fees)
}

func (api *feeApi) summary(ctx echo.Context) error {
	sum, err := api.svc.Summarize()
	if err != nil {
		return errors.Wrap(err, "summarizing fees")
	}
	return ctx.JSON(http.StatusOK, sum)
}

// get admits admins to any student's record and students only to their
// own. Teachers have no business with fees.
func (api *feeApi) get(ctx echo.Context) error {
	studentID := ctx.Param("studentID")
	usr := getContextUser(ctx)
	if !usr.IsAdmin() && usr.ID != studentID {
		return errHttpForbidden
	}
	f, err := api.svc.Get(studentID)
	if err != nil {
		return errors.Wrap(err, "querying fee record")
	}
	return ctx.JSON(http.StatusOK, f)
}

func (api *feeApi) update(ctx echo.Context) error {
	var data fee.Update
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Update")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	f, err := api.svc.Update(getContextUser(ctx), ctx.Param("studentID"), data)
	if err != nil {
		return errors.Wrap(err, "updating fee record")
	}
	return ctx.JSON(http.StatusOK, f)
}
