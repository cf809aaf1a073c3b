package main

import (
	"log"
	"os"

	echoapi "github.com/gauravw/coachcenter/apps/api/echo"
	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/assignment"
	"github.com/gauravw/coachcenter/core/attendance"
	"github.com/gauravw/coachcenter/core/fee"
	"github.com/gauravw/coachcenter/core/notice"
	"github.com/gauravw/coachcenter/core/user"
	"github.com/gauravw/coachcenter/core/video"
	logsvc "github.com/gauravw/coachcenter/services/logger"
	metricsvc "github.com/gauravw/coachcenter/services/metrics"
	notifysvc "github.com/gauravw/coachcenter/services/notifier"
	inmemdb "github.com/gauravw/coachcenter/storage/database/inmem"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(std, err)

	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up the store
	db, err := inmemdb.Open()
	errAndDie(std, err)
	db.Observe(metricsvc.StoreObserver)
	db.Seed()

	var notifier core.Notifier
	if conf.Notifier.Backend == "sendgrid" {
		notifier = notifysvc.NewSendgridNotifier(conf, logger)
	} else {
		notifier = notifysvc.NewConsoleNotifier(std, conf)
	}

	// set up services
	usrRepo := inmemdb.NewUserRepository(db)
	feeSvc := fee.NewService(inmemdb.NewFeeRepository(db))
	attendanceSvc := attendance.NewService(inmemdb.NewAttendanceRepository(db))
	usrSvc := user.NewService(usrRepo, feeSvc, attendanceSvc)
	noticeSvc := notice.NewService(inmemdb.NewNoticeRepository(db), notifier)
	assignmentSvc := assignment.NewService(inmemdb.NewAssignmentRepository(db), usrSvc, notifier)
	videoSvc := video.NewService(inmemdb.NewVideoRepository(db), notifier)
	session := user.NewSession(usrRepo)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address: conf.ServerAddress(),
			Conf:    conf,
			Logger:  logger,

			Session:       session,
			UserSvc:       usrSvc,
			NoticeSvc:     noticeSvc,
			AttendanceSvc: attendanceSvc,
			AssignmentSvc: assignmentSvc,
			VideoSvc:      videoSvc,
			FeeSvc:        feeSvc,
		},
	)
	app.Start()
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatal(err)
	}
}
