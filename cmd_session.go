package main

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rigelrozanski/tunetrack/session"
)

var (
	SessionCmd = &cobra.Command{
		Use:   "session",
		Short: "search and import tunes from thesession.org",
	}

	SessionSearchCmd = &cobra.Command{
		Use:   "search [query]",
		Short: "list the tunes matching a name",
		Args:  cobra.MinimumNArgs(1),
		RunE:  sessionSearchCmd,
	}

	SessionTuneCmd = &cobra.Command{
		Use:   "tune [tune-id]",
		Short: "list the settings of a tune",
		Args:  cobra.ExactArgs(1),
		RunE:  sessionTuneCmd,
	}

	SessionSetsCmd = &cobra.Command{
		Use:   "sets [tune-id]",
		Short: "list the sets that include a tune",
		Args:  cobra.ExactArgs(1),
		RunE:  sessionSetsCmd,
	}

	SessionImportCmd = &cobra.Command{
		Use:   "import [tune-id]",
		Short: "print the first setting of a tune as complete ABC",
		Args:  cobra.ExactArgs(1),
		RunE:  sessionImportCmd,
	}

	SessionRandomSetCmd = &cobra.Command{
		Use:   "random-set",
		Short: "build a set from randomly picked popular tunes",
		Args:  cobra.NoArgs,
		RunE:  sessionRandomSetCmd,
	}

	importOutFlag string
	setSizeFlag   int
	seedFlag      int64
)

func init() {
	SessionImportCmd.Flags().StringVar(&importOutFlag, "out", "",
		"write the ABC to this source instead of printing it")
	SessionRandomSetCmd.Flags().IntVar(&setSizeFlag, "size", 3, "number of tunes in the set")
	SessionRandomSetCmd.Flags().Int64Var(&seedFlag, "seed", 0, "random seed (default time based)")
	SessionCmd.AddCommand(SessionSearchCmd, SessionTuneCmd, SessionSetsCmd,
		SessionImportCmd, SessionRandomSetCmd)
	RootCmd.AddCommand(SessionCmd)
}

func newSessionClient() *session.Client {
	return session.NewClient(
		session.WithBaseURL(cfg.SessionURL),
		session.WithUserAgent(cfg.UserAgent),
		session.WithRate(cfg.RequestsPerSecond),
		session.WithLogger(logrus.StandardLogger()),
	)
}

func parseTuneID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "bad tune id %q", arg)
	}
	return id, nil
}

func sessionSearchCmd(cmd *cobra.Command, args []string) error {
	res, err := newSessionClient().Search(context.Background(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s tunes found\n", humanize.Comma(int64(res.Total)))
	for _, t := range res.Tunes {
		fmt.Fprintf(out, "%8d  %-10s %s\n", t.ID, t.Type, t.Name)
	}
	return nil
}

func sessionTuneCmd(cmd *cobra.Command, args []string) error {
	id, err := parseTuneID(args[0])
	if err != nil {
		return err
	}
	tune, err := newSessionClient().Tune(context.Background(), id)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s), %d settings\n", tune.Name, tune.Type, len(tune.Settings))
	for _, s := range tune.Settings {
		fmt.Fprintf(out, "%8d  %-12s %-5s %s\n", s.ID, s.Key, s.Meter, s.Date)
	}
	return nil
}

func sessionSetsCmd(cmd *cobra.Command, args []string) error {
	id, err := parseTuneID(args[0])
	if err != nil {
		return err
	}
	sets, err := newSessionClient().Sets(context.Background(), id)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s sets\n", humanize.Comma(int64(len(sets))))
	for _, s := range sets {
		fmt.Fprintf(out, "%8d  %s  %s\n", s.ID, s.Date, s.Name)
	}
	return nil
}

func sessionImportCmd(cmd *cobra.Command, args []string) error {
	id, err := parseTuneID(args[0])
	if err != nil {
		return err
	}
	im, err := newSessionClient().Import(context.Background(), id, cfg.Keys)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"title": im.Title,
		"type":  im.Type,
		"key":   im.Key,
		"meter": im.Meter,
	}).Info(strings.Replace(im.Notes, "\n", "; ", -1))

	if importOutFlag != "" {
		return writeSource(importOutFlag, im.ABC+"\n")
	}
	fmt.Fprintln(cmd.OutOrStdout(), im.ABC)
	return nil
}

func sessionRandomSetCmd(cmd *cobra.Command, args []string) error {
	seed := seedFlag
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	set, err := newSessionClient().RandomSet(context.Background(),
		setSizeFlag, cfg.Workers, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, t := range set {
		fmt.Fprintf(out, "%% %s tune: %s (%s, %s)\n", humanize.Ordinal(i+1), t.Title, t.Type, t.Key)
		if t.ABC == "" {
			fmt.Fprintf(out, "%% no notation available for tune #%d\n\n", t.ID)
			continue
		}
		fmt.Fprintf(out, "%s\n\n", t.ABC)
	}
	return nil
}
