package main

import (
	"fmt"

	"github.com/gauravw/coachcenter/core/user"
)

// listUsers prints the roster, optionally narrowed to one role.
func (cli *commandLine) listUsers(role string) error {
	var users []user.User
	var err error
	switch role {
	case "":
		users, err = cli.usrSvc.QueryAll()
	case user.RoleStudent:
		users, err = cli.usrSvc.Students()
	case user.RoleTeacher:
		users, err = cli.usrSvc.Teachers()
	default:
		return fmt.Errorf("unknown role %q", role)
	}
	if err != nil {
		return err
	}
	for _, usr := range users {
		fmt.Printf("%-10s %-15s %-25s %s\n", usr.Role, usr.Username, usr.Name, usr.ID)
	}
	return nil
}

// feeReport prints the center-wide collection summary.
func (cli *commandLine) feeReport() error {
	sum, err := cli.feeSvc.Summarize()
	if err != nil {
		return err
	}
	fmt.Printf("collected: %d\npending:   %d\n", sum.TotalCollected, sum.TotalPending)
	return nil
}
