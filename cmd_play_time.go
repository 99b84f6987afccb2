package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rigelrozanski/tunetrack/abc"
)

var (
	PlayTimeCmd = &cobra.Command{
		Use:   "pt [source]",
		Short: "print how long the tune takes to play",
		Long: `print how long the tune takes to play at its Q: tempo (1/4=120 when
there is none), counting repeated sections twice. Every bar is taken to be
full, so a pickup counts as a whole bar.`,
		Args: cobra.MaximumNArgs(1),
		RunE: playTimeCmd,
	}

	timesFlag int
)

const defaultTempo = "1/4=120"

func init() {
	PlayTimeCmd.Flags().IntVar(&timesFlag, "times", 1,
		"times through the tune")
	RootCmd.AddCommand(PlayTimeCmd)
}

func playTimeCmd(cmd *cobra.Command, args []string) error {
	content, err := readSource(sourceArg(args))
	if err != nil {
		return err
	}
	if timesFlag < 1 {
		return errors.New("times must be at least 1")
	}
	bars, perBar, err := playTime(content)
	if err != nil {
		return err
	}
	total := time.Duration(bars*timesFlag) * perBar
	fmt.Fprintf(cmd.OutOrStdout(), "%v (%v bars played)\n",
		durafmt.Parse(total).LimitFirstN(2), bars*timesFlag)
	return nil
}

// playTime counts the bars played, repeats included, and the length of a
// single bar.
func playTime(content string) (bars int, perBar time.Duration, err error) {
	doc := abc.ClassifyLines(content)
	played := playedBars(abc.SplitBars(doc))
	if played == 0 {
		return 0, 0, errors.New("no music to time")
	}

	meter, _ := doc.Header('M')
	barLen, err := meterLength(meter)
	if err != nil {
		return 0, 0, err
	}
	tempo, ok := doc.Header('Q')
	if !ok {
		tempo = defaultTempo
	}
	unit, bpm, err := parseTempo(tempo)
	if err != nil {
		return 0, 0, err
	}
	beats := barLen / unit
	perBar = time.Duration(beats * float64(time.Minute) / bpm)
	return played, perBar, nil
}

// playedBars counts a section closed by ":|" twice. A section opens at the
// start of the tune, after a "|:" and after the previous repeat. Bars from
// a first ending ("[1") on are not part of the second time through.
func playedBars(bars []string) (played int) {
	sectionStart, firstEnding := 0, -1
	for i, bar := range bars {
		if strings.HasPrefix(bar, "|:") {
			sectionStart = i
		}
		if strings.HasPrefix(strings.TrimLeft(bar, "|:"), "[1") {
			firstEnding = i
		}
		played++
		tail := barLineRun(bar)
		if strings.Contains(tail, ":|") {
			end := i + 1
			if firstEnding >= sectionStart {
				end = firstEnding
			}
			played += end - sectionStart
			sectionStart, firstEnding = i+1, -1
		}
		if strings.Contains(tail, "|:") {
			sectionStart = i + 1
		}
	}
	return played
}

func barLineRun(bar string) string {
	i := len(bar)
	for i > 0 && strings.IndexByte("|:[]", bar[i-1]) >= 0 {
		i--
	}
	return bar[i:]
}

// meterLength is the length of a bar in whole notes.
func meterLength(meter string) (float64, error) {
	switch strings.TrimSpace(meter) {
	case "", "C", "C|", "none":
		return 1, nil
	}
	return parseFraction(meter)
}

var quoted = regexp.MustCompile(`"[^"]*"`)

// parseTempo reads "1/4=120" or a bare "120" (quarter notes). Quoted text
// such as "Allegro" is ignored.
func parseTempo(tempo string) (unit, bpm float64, err error) {
	bad := errors.Errorf("bad tempo %q", tempo)
	s := strings.TrimSpace(quoted.ReplaceAllString(tempo, ""))
	unit = 0.25
	if i := strings.Index(s, "="); i >= 0 {
		// a beat may be written as a sum, e.g. "1/4 1/8"
		unit = 0
		for _, f := range strings.Fields(s[:i]) {
			v, err := parseFraction(f)
			if err != nil {
				return 0, 0, bad
			}
			unit += v
		}
		s = s[i+1:]
	}
	fields := strings.Fields(s)
	if len(fields) == 0 || unit <= 0 {
		return 0, 0, bad
	}
	bpm, err = strconv.ParseFloat(fields[0], 64)
	if err != nil || bpm <= 0 {
		return 0, 0, bad
	}
	return unit, bpm, nil
}

func parseFraction(s string) (float64, error) {
	splt := strings.SplitN(strings.TrimSpace(s), "/", 2)
	if len(splt) != 2 {
		return 0, errors.Errorf("bad fraction %q", s)
	}
	num, err1 := strconv.Atoi(splt[0])
	den, err2 := strconv.Atoi(splt[1])
	if err1 != nil || err2 != nil || num <= 0 || den <= 0 {
		return 0, errors.Errorf("bad fraction %q", s)
	}
	return float64(num) / float64(den), nil
}
