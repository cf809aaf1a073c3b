package main

import (
	"fmt"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/user"
)

// cliActor stands in for the signed-in admin the service gate expects.
var cliActor = user.User{ID: "admin-cli", Username: "cli", Role: user.RoleAdmin, Name: "Admin CLI"}

// addUser creates a user.User account. New students also get their fee and
// attendance records seeded by the service.
func (cli *commandLine) addUser(uname, name, role, pwd string) error {
	nu := user.NewUser{
		Username: core.CleanString(uname, true /* lower */),
		Name:     core.CleanString(name),
		Password: pwd,
		Role:     core.CleanString(role, true /* lower */),
	}
	if err := nu.Validate(); err != nil {
		return err
	}
	usr, err := cli.usrSvc.Create(cliActor, nu)
	if err != nil {
		return err
	}
	fmt.Printf("created %s account %s (%s)\n", usr.Role, usr.Username, usr.ID)
	return nil
}
