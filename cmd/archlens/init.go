package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"archlens/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize archlens configuration",
	Long:  "Creates a .archlens/ directory with default configuration in the current directory",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Force reinitialization (overwrites existing configuration)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configPath := filepath.Join(cwd, ".archlens", "config.json")
	if _, statErr := os.Stat(configPath); statErr == nil && !initForce {
		// Idempotent behavior: already initialized is success (CI-friendly)
		fmt.Println("archlens already initialized.")
		fmt.Printf("Configuration at: %s\n", configPath)
		fmt.Println("\nRun 'archlens init --force' to reinitialize.")
		return nil
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(cwd); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	fmt.Println("archlens initialized.")
	fmt.Printf("Configuration at: %s\n", configPath)
	return nil
}
