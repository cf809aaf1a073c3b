package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gauravw/coachcenter/core/attendance"
	"github.com/gauravw/coachcenter/core/user"
)

type attendanceApi struct {
	svc *attendance.Service
}

func registerAttendanceAPI(g *echo.Group, authed echo.MiddlewareFunc, svc *attendance.Service) {
	api := attendanceApi{svc: svc}

	ag := g.Group("/attendance", authed)
	ag.PUT("", api.mark, roleMiddleware(user.RoleTeacher))
	ag.GET("/:studentID", api.forStudent)
	ag.GET("/:studentID/report", api.monthlyReport)
}

func (api *attendanceApi) mark(ctx echo.Context) error {
	var data attendance.Mark
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Mark")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.svc.Mark(getContextUser(ctx), data); err != nil {
		return errors.Wrap(err, "marking attendance")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *attendanceApi) forStudent(ctx echo.Context) error {
	studentID, err := requireSelfOrStaff(ctx)
	if err != nil {
		return err
	}
	rec, err := api.svc.ForStudent(studentID)
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) monthlyReport(ctx echo.Context) error {
	studentID, err := requireSelfOrStaff(ctx)
	if err != nil {
		return err
	}
	rep, err := api.svc.MonthlyReport(studentID)
	if err != nil {
		return errors.Wrap(err, "computing monthly report")
	}
	return ctx.JSON(http.StatusOK, rep)
}

// requireSelfOrStaff admits teachers and admins to any student's record,
// and students only to their own.
func requireSelfOrStaff(ctx echo.Context) (string, error) {
	studentID := ctx.Param("studentID")
	usr := getContextUser(ctx)
	if usr.IsStudent() && usr.ID != studentID {
		return "", errHttpForbidden
	}
	return studentID, nil
}
