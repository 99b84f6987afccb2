package main

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"

	"github.com/rigelrozanski/tunetrack/abc"
)

var (
	IsABCCmd = &cobra.Command{
		Use:   "is-abc [filepath]",
		Short: "print TRUE or FALSE if the file is a renderable ABC tune",
		Args:  cobra.ExactArgs(1),
		RunE:  isABCCmd,
	}
)

func init() {
	RootCmd.AddCommand(IsABCCmd)
}

func isABCCmd(cmd *cobra.Command, args []string) error {
	content, err := ioutil.ReadFile(args[0])
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), "FALSE")
		return err
	}
	if abc.ClassifyLines(string(content)).WellFormed() {
		fmt.Fprint(cmd.OutOrStdout(), "TRUE")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), "FALSE")
	return nil
}
