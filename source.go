package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rigelrozanski/thranch/quac"
)

const (
	stdinSource = "-"
	quPrefix    = "qu:"
)

var quacOnce sync.Once

func initQuac() {
	quacOnce.Do(func() {
		quac.Initialize(os.ExpandEnv(cfg.QuacConfig))
	})
}

// readSource reads ABC text from a file path, stdin ("-"), or an entry of
// the quac idea store ("qu:<id>").
func readSource(src string) (string, error) {
	switch {
	case src == stdinSource:
		bz, err := ioutil.ReadAll(os.Stdin)
		return string(bz), errors.Wrap(err, "reading stdin")
	case strings.HasPrefix(src, quPrefix):
		quid, err := parseQuID(src)
		if err != nil {
			return "", err
		}
		initQuac()
		content, found := quac.GetContentByID(quid)
		if !found {
			return "", fmt.Errorf("could not find anything under id: %v", quid)
		}
		return string(content), nil
	}
	bz, err := ioutil.ReadFile(src)
	return string(bz), errors.Wrapf(err, "reading %v", src)
}

// writeSource replaces the content of a file or quac entry.
func writeSource(src, content string) error {
	fp := src
	switch {
	case src == stdinSource:
		return errors.New("cannot write back to stdin")
	case strings.HasPrefix(src, quPrefix):
		quid, err := parseQuID(src)
		if err != nil {
			return err
		}
		initQuac()
		var found bool
		fp, found = quac.GetFilepathByID(quid)
		if !found {
			return fmt.Errorf("could not find anything under id: %v", quid)
		}
	}
	return errors.Wrapf(ioutil.WriteFile(fp, []byte(content), 0666), "writing %v", fp)
}

func parseQuID(src string) (uint32, error) {
	quid, err := strconv.Atoi(strings.TrimPrefix(src, quPrefix))
	if err != nil || quid < 0 {
		return 0, fmt.Errorf("bad qu id %q", src)
	}
	return uint32(quid), nil
}

func sourceArg(args []string) string {
	if len(args) == 0 {
		return stdinSource
	}
	return args[0]
}
