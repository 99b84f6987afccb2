package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "tt",
		Short: "tunetrack, clean, preview, transpose and import ABC tunes",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(debugFlag)
			var err error
			cfg, err = loadConfig(configFlag, cmd.Flags().Changed("config"))
			return err
		},
		SilenceUsage: true,
	}

	configFlag string
	debugFlag  bool
)

func init() {
	RootCmd.PersistentFlags().StringVar(
		&configFlag, "config", os.ExpandEnv(defaultConfigPath),
		"path to the yaml configuration file")
	RootCmd.PersistentFlags().BoolVar(
		&debugFlag, "debug", false, "log debug output")
}
