package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/assignment"
	"github.com/gauravw/coachcenter/core/user"
)

type assignmentApi struct {
	svc *assignment.Service
}

func registerAssignmentAPI(g *echo.Group, authed echo.MiddlewareFunc, svc *assignment.Service) {
	api := assignmentApi{svc: svc}

	ag := g.Group("/assignments", authed)
	ag.GET("", api.query)
	ag.POST("", api.create, roleMiddleware(user.RoleTeacher))
	ag.POST("/:id/submissions", api.submit, roleMiddleware(user.RoleStudent))
	ag.GET("/:id/coverage", api.coverage, roleMiddleware(user.RoleTeacher))
}

func (api *assignmentApi) query(ctx echo.Context) error {
	assignments, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	if assignments == nil {
		assignments = []assignment.Assignment{}
	}
	return ctx.JSON(http.StatusOK, assignments)
}

func (api *assignmentApi) create(ctx echo.Context) error {
	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	a, err := api.svc.Create(getContextUser(ctx), data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusCreated, a)
}

type SubmissionRequest struct {
	File string `json:"file" validate:"required"`
}

func (sr *SubmissionRequest) Validate() error {
	sr.File = core.CleanString(sr.File)
	return core.Validate.Struct(sr)
}

func (api *assignmentApi) submit(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	var data SubmissionRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubmissionRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.svc.Submit(getContextUser(ctx), id, data.File); err != nil {
		return errors.Wrap(err, "submitting assignment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *assignmentApi) coverage(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	cov, err := api.svc.CoverageFor(id)
	if err != nil {
		return errors.Wrap(err, "computing coverage")
	}
	return ctx.JSON(http.StatusOK, cov)
}
