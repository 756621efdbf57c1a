package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/enrollment"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db        *sqlx.DB
	conf      *core.Config
	enrollSvc *enrollment.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate [COMMAND] [ARGS...] - run database migrations (default command: up)")
	fmt.Println("  checkconflict -student STUDENT_ID -batch BATCH_ID - dry-run a schedule conflict check")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	checkConflictCmd := flag.NewFlagSet("checkconflict", flag.ExitOnError)
	ccStudent := checkConflictCmd.String("student", "", "The student's ID.")
	ccBatch := checkConflictCmd.String("batch", "", "The candidate batch's ID.")

	switch args[1] {
	case "migrate":
		migrateArgs := []string{"up"}
		if len(args) > 2 {
			migrateArgs = args[2:]
		}
		return cli.migrate(migrateArgs)
	case "checkconflict":
		if err := checkConflictCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *ccStudent == "" || *ccBatch == "" {
			checkConflictCmd.Usage()
			return errHelp
		}
		return cli.checkConflict(*ccStudent, *ccBatch)
	default:
		cli.printUsage()
		return errHelp
	}
}
