package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/masonbrown9/gradebook/core"
	"github.com/masonbrown9/gradebook/core/course"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	svc *course.Service
	in  io.Reader
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  (no arguments)        - interactive course manager")
	fmt.Fprintln(cli.out, "  snapshot              - print the grades snapshot")
	fmt.Fprintln(cli.out, "  report [-to ADDRESS]  - email the grades snapshot")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		return cli.mainMenu()
	}

	reportCmd := flag.NewFlagSet("report", flag.ExitOnError)
	reportTo := reportCmd.String("to", "", "Recipient address. Defaults to the configured report address.")

	switch args[1] {
	case "snapshot":
		return cli.snapshot()
	case "report":
		if err := reportCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.report(*reportTo)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) snapshot() error {
	snapshot, err := cli.svc.Snapshot()
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out)
	fmt.Fprint(cli.out, snapshot)
	return nil
}

func (cli *commandLine) report(to string) error {
	if to != "" {
		addr, err := mail.ParseAddress(to)
		if err != nil {
			return fmt.Errorf("invalid recipient address %q", to)
		}
		core.Conf.ReportEmail = *addr
	}
	return cli.svc.SendSnapshot()
}

// translateValidationErr flattens a validation error into one printable line.
func translateValidationErr(err error) string {
	if vErrs, ok := err.(validator.ValidationErrors); ok {
		parts := make([]string, 0, len(vErrs))
		for _, vErr := range vErrs {
			parts = append(parts, vErr.Translate(core.Translator))
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}
