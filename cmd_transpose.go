package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rigelrozanski/tunetrack/abc"
)

var (
	TransposeCmd = &cobra.Command{
		Use:   "transpose [source]",
		Short: "shift every note of a tune by a number of semitones",
		Long: `shift every note of a tune by --steps semitones (negative is down)
and rewrite its key to --key. Without --key the new key is worked out from
the tune's own key. If the tune cannot be transposed nothing is printed or
written and the command fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: transposeCmd,
	}

	stepsFlag     int
	targetKeyFlag string
	writeFlag     bool
)

func init() {
	TransposeCmd.Flags().IntVar(&stepsFlag, "steps", 0, "semitones to shift by")
	TransposeCmd.Flags().StringVar(&targetKeyFlag, "key", "", "key to transpose into")
	TransposeCmd.Flags().BoolVar(&writeFlag, "write", false,
		"write the transposed tune back over the source")
	RootCmd.AddCommand(TransposeCmd)
}

func transposeCmd(cmd *cobra.Command, args []string) error {
	src := sourceArg(args)
	content, err := readSource(src)
	if err != nil {
		return err
	}
	out, err := abc.Transpose(content, stepsFlag, targetKeyFlag)
	if err != nil {
		logrus.WithField("source", src).Warn("transposition failed, notation unchanged")
		return err
	}
	if writeFlag {
		return writeSource(src, out)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
