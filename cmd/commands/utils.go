package commands

import (
	"fmt"
	"os"

	"inkwell/pkg/logger"
)

const helpText = `inkwell - blog media service

Usage:
  inkwell run <config.yml>   start the service
  inkwell version            print version
  inkwell help               show this message
`

func HandleHelp(_ []string) {
	fmt.Print(helpText) //nolint
}

func ExitOnError(err error) {
	logger.Error("inkwell error", "err", err.Error())
	os.Exit(1)
}
