package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ccx/internal/config"
	"ccx/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ccx configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to .ccx/config.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if err := cfg.Save("."); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Println("Wrote .ccx/config.json")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		data, err := output.EncodeJSON(cfg)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
