package main

import (
	"fmt"
	"os"

	"github.com/kostrykin/repype/internal/config"
	"github.com/kostrykin/repype/internal/logger"
	"github.com/kostrykin/repype/internal/stage"
	commandstage "github.com/kostrykin/repype/internal/stages/command"
	delaystage "github.com/kostrykin/repype/internal/stages/delay"
	fetchstage "github.com/kostrykin/repype/internal/stages/fetch"
)

func main() {
	log, err := logger.New(logger.Options{Level: "info", HumanReadable: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	registry := stage.NewRegistry()
	if err := registerStages(registry); err != nil {
		fmt.Fprintf(os.Stderr, "failed to prepare stage runners: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(settings, registry, log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func registerStages(registry *stage.Registry) error {
	runners := []stage.Runner{
		commandstage.New(),
		fetchstage.New(),
		delaystage.New(),
	}
	for _, runner := range runners {
		if err := registry.Register(runner); err != nil {
			return err
		}
	}
	return nil
}
