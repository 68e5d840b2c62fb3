package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/aryanch/projtrack/core"
	"github.com/aryanch/projtrack/core/person"
	"github.com/aryanch/projtrack/core/risk"
	"github.com/aryanch/projtrack/core/task"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf        *core.Config
	personRepo  person.Repository
	taskRepo    task.Repository
	riskLogRepo risk.LogRepository
	mailSvc     core.EmailService
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  seed [-force]       - populate the database with sample users and tasks")
	fmt.Println("  snapshot [-notify]  - compute and persist the current project risk")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedForce := seedCmd.Bool("force", false, "Wipe existing users and tasks before seeding.")

	snapshotCmd := flag.NewFlagSet("snapshot", flag.ExitOnError)
	snapshotNotify := snapshotCmd.Bool("notify", false, "Email the advisory to the configured address.")

	switch args[1] {
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.seed(*seedForce)
	case "snapshot":
		if err := snapshotCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.snapshot(*snapshotNotify)
	default:
		cli.printUsage()
		return errHelp
	}
}
