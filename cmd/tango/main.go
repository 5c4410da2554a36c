package main

import (
	"errors"
	"os"

	cmd "github.com/MrSnakeDoc/tango/internal"
	"github.com/MrSnakeDoc/tango/internal/errs"
	"github.com/MrSnakeDoc/tango/internal/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errs.ErrLogged) {
			logger.LogError("%s", err.Error())
		}
		os.Exit(errs.ExitCode(err))
	}
}
