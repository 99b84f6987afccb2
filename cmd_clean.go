package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rigelrozanski/tunetrack/abc"
)

var (
	CleanCmd = &cobra.Command{
		Use:   "clean [source]",
		Short: "complete the headers of an ABC fragment and expand '!' line breaks",
		Args:  cobra.MaximumNArgs(1),
		RunE:  cleanCmd,
	}

	titleFlag string
	keyFlag   string
	meterFlag string
)

func init() {
	CleanCmd.Flags().StringVar(&titleFlag, "title", "", "title to write when there is no header")
	CleanCmd.Flags().StringVar(&keyFlag, "key", "", "key to write when there is no header")
	CleanCmd.Flags().StringVar(&meterFlag, "meter", "", "meter to write when there is no header")
	RootCmd.AddCommand(CleanCmd)
}

func cleanCmd(cmd *cobra.Command, args []string) error {
	content, err := readSource(sourceArg(args))
	if err != nil {
		return err
	}
	meta := abc.Meta{Title: titleFlag, Key: keyFlag, Meter: meterFlag}
	fmt.Fprintln(cmd.OutOrStdout(), abc.CleanAndComplete(content, meta))
	return nil
}
