package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fabula-app/fabula/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a fabula library in the current directory",
		Long: `Creates a .fabula directory with a default config file. Running init
is optional; every command falls back to defaults when no config exists.`,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("already initialized: %s", config.ConfigFilePath(cwd))
	}

	if err := config.WriteDefault(cwd); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Initialized fabula library in %s\n", config.ConfigDir(cwd))
	return nil
}
