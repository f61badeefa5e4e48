package main

import (
	"context"
	"os"

	"github.com/LeeHyunWon999/multi-thread/internal/app"
	apperrors "github.com/LeeHyunWon999/multi-thread/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.HandleRunError(err, os.Stderr))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
