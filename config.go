package main

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/rigelrozanski/tunetrack/abc"
	"github.com/rigelrozanski/tunetrack/session"
)

const defaultConfigPath = "$HOME/.tunetrack.yaml"

type config struct {
	SessionURL        string   `yaml:"session_url"`
	UserAgent         string   `yaml:"user_agent"`
	RequestsPerSecond float64  `yaml:"requests_per_second"`
	Workers           int      `yaml:"workers"`
	PreviewBars       int      `yaml:"preview_bars"`
	QuacConfig        string   `yaml:"quac_config"`
	Keys              []string `yaml:"keys"`
}

var cfg = defaultConfig()

func defaultConfig() config {
	return config{
		SessionURL:        session.DefaultBaseURL,
		UserAgent:         session.DefaultUserAgent,
		RequestsPerSecond: 2,
		Workers:           4,
		PreviewBars:       abc.DefaultPreviewBars,
		QuacConfig:        "$HOME/.thranch_config",
		Keys: []string{
			"C", "D", "E", "F", "G", "A", "Bb", "B",
			"D Minor", "E Minor", "G Minor", "A Minor", "B Minor",
			"D Dorian", "E Dorian", "G Dorian", "A Dorian", "B Dorian",
			"D Mixolydian", "E Mixolydian", "G Mixolydian", "A Mixolydian",
		},
	}
}

// loadConfig reads the yaml file over the defaults. A missing file is only
// an error when it was asked for explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	c := defaultConfig()
	bz, err := ioutil.ReadFile(path)
	switch {
	case os.IsNotExist(err) && !explicit:
		return c, nil
	case err != nil:
		return c, errors.Wrap(err, "reading config")
	}
	if err := yaml.UnmarshalStrict(bz, &c); err != nil {
		return c, errors.Wrapf(err, "parsing config %v", path)
	}
	if c.PreviewBars < 1 {
		c.PreviewBars = abc.DefaultPreviewBars
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c, nil
}
