package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rigelrozanski/tunetrack/abc"
)

var (
	PreviewCmd = &cobra.Command{
		Use:   "preview [source]",
		Short: "print the headers and first bars of a tune",
		Args:  cobra.MaximumNArgs(1),
		RunE:  previewCmd,
	}

	barsFlag int
)

func init() {
	PreviewCmd.Flags().IntVar(&barsFlag, "bars", 0,
		"number of bars, the pickup included (default from config)")
	RootCmd.AddCommand(PreviewCmd)
}

func previewBars() int {
	if barsFlag > 0 {
		return barsFlag
	}
	return cfg.PreviewBars
}

func previewCmd(cmd *cobra.Command, args []string) error {
	content, err := readSource(sourceArg(args))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), abc.ExtractPreview(content, previewBars()))
	return nil
}
