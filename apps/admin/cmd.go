package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/zyraworkhub/zyra/core"
	"github.com/zyraworkhub/zyra/core/record"
	"github.com/zyraworkhub/zyra/storage/jsonfile"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf      *core.Config
	logger    core.Logger
	store     *jsonfile.Store
	recordSvc *record.Service
	validate  *validator.Validate
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  seed -src DIR [-force]                        - validate and install reference collections")
	fmt.Println("  addadmin -name NAME -email EMAIL - register an admin entry")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedSrc := seedCmd.String("src", "", "Directory containing the reference collection files.")
	seedForce := seedCmd.Bool("force", false, "Overwrite collections that already exist in the data directory.")

	addAdminCmd := flag.NewFlagSet("addadmin", flag.ExitOnError)
	addAdminName := addAdminCmd.String("name", "", "The admin's full name.")
	addAdminEmail := addAdminCmd.String("email", "", "The admin's email address.")

	switch args[1] {
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedSrc == "" {
			seedCmd.Usage()
			return errHelp
		}
		return cli.seed(*seedSrc, *seedForce)
	case "addadmin":
		if err := addAdminCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addAdminName == "" || *addAdminEmail == "" {
			addAdminCmd.Usage()
			return errHelp
		}
		return cli.addAdmin(*addAdminName, *addAdminEmail)
	default:
		cli.printUsage()
		return errHelp
	}
}
