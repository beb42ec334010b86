package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/onneile/molemi/internal/app"
	"github.com/onneile/molemi/internal/cli"
	"github.com/onneile/molemi/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	cliApp := &cli.App{
		Pipeline: application.Pipeline,
		Turns:    application.Turns,
		Glossary: application.Glossary,
		Server:   application.Server,
		SMS:      application.SMS,
		Log:      application.Log,
	}
	cliApp.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(cliApp)
	return rootCmd.Execute()
}
