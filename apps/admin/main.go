package main

import (
	"log"
	"os"

	"github.com/gauravw/coachcenter/core/attendance"
	"github.com/gauravw/coachcenter/core/fee"
	"github.com/gauravw/coachcenter/core/user"
	inmemdb "github.com/gauravw/coachcenter/storage/database/inmem"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up the store with the stock roster
	db, err := inmemdb.Open()
	errAndDie(err)
	db.Seed()

	feeSvc := fee.NewService(inmemdb.NewFeeRepository(db))
	attendanceSvc := attendance.NewService(inmemdb.NewAttendanceRepository(db))
	usrSvc := user.NewService(inmemdb.NewUserRepository(db), feeSvc, attendanceSvc)

	// start CLI
	cli := commandLine{
		usrSvc: usrSvc,
		feeSvc: feeSvc,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
