package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gauravw/coachcenter/core/fee"
	"github.com/gauravw/coachcenter/core/user"
)

type dashboardApi struct {
	userSvc *user.Service
	feeSvc  *fee.Service
}

// Overview is the admin landing snapshot: headcounts plus the money
// position across all fee records.
type Overview struct {
	Students int         `json:"students"`
	Teachers int         `json:"teachers"`
	Fees     fee.Summary `json:"fees"`
}

func registerDashboardAPI(g *echo.Group, authed echo.MiddlewareFunc, userSvc *user.Service, feeSvc *fee.Service) {
	api := dashboardApi{userSvc: userSvc, feeSvc: feeSvc}
	g.GET("/dashboard", api.overview, authed, roleMiddleware(user.RoleAdmin))
}

func (api *dashboardApi) overview(ctx echo.Context) error {
	students, err := api.userSvc.Students()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	teachers, err := api.userSvc.Teachers()
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	sum, err := api.feeSvc.Summarize()
	if err != nil {
		return errors.Wrap(err, "summarizing fees")
	}
	return ctx.JSON(http.StatusOK, Overview{
		Students: len(students),
		Teachers: len(teachers),
		Fees:     sum,
	})
}
