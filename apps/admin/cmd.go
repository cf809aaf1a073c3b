package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/gauravw/coachcenter/core/fee"
	"github.com/gauravw/coachcenter/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	usrSvc *user.Service
	feeSvc *fee.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  adduser -username USERNAME -name NAME -role ROLE - add a user account (password prompted)")
	fmt.Println("  listusers [-role ROLE] - list user accounts")
	fmt.Println("  feereport - print the fee collection summary")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserUname := addUserCmd.String("username", "", "The new account's username. The password will be prompted next.")
	addUserName := addUserCmd.String("name", "", "The person's display name.")
	addUserRole := addUserCmd.String("role", user.RoleStudent, "One of: admin, teacher, student.")

	listUsersCmd := flag.NewFlagSet("listusers", flag.ExitOnError)
	listUsersRole := listUsersCmd.String("role", "", "Only list accounts with this role.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserUname == "" || *addUserName == "" {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserUname, *addUserName, *addUserRole, string(pwd))
	case "listusers":
		if err := listUsersCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listUsers(*listUsersRole)
	case "feereport":
		return cli.feeReport()
	default:
		cli.printUsage()
		return errHelp
	}
}
