package echoapi

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/assignment"
	"github.com/gauravw/coachcenter/core/attendance"
	"github.com/gauravw/coachcenter/core/fee"
	"github.com/gauravw/coachcenter/core/notice"
	"github.com/gauravw/coachcenter/core/user"
	"github.com/gauravw/coachcenter/core/video"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool

		Conf   *core.Config
		Logger core.Logger

		Session       *user.Session
		UserSvc       *user.Service
		NoticeSvc     *notice.Service
		AttendanceSvc *attendance.Service
		AssignmentSvc *assignment.Service
		VideoSvc      *video.Service
		FeeSvc        *fee.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := s.opts.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || s.opts.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = debug

	s.app.GET("/", home)
	s.app.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.app.Group("/v1")
	registerSessionAPI(v1, s.opts.Session)

	authed := authRequiredMiddleware(s.opts.Session)
	registerUserAPI(v1, authed, s.opts.UserSvc)
	registerNoticeAPI(v1, authed, s.opts.NoticeSvc)
	registerAttendanceAPI(v1, authed, s.opts.AttendanceSvc)
	registerAssignmentAPI(v1, authed, s.opts.AssignmentSvc)
	registerVideoAPI(v1, authed, s.opts.VideoSvc)
	registerFeeAPI(v1, authed, s.opts.FeeSvc)
	registerDashboardAPI(v1, authed, s.opts.UserSvc, s.opts.FeeSvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) signalShutdown() {
	s.opts.Logger.Error("shutting down on unrecoverable error")
	_ = s.app.Shutdown(context.Background())
	os.Exit(1)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the CoachCenter API!")
}
