package session

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hako/durafmt"
	"github.com/pkg/errors"
	"github.com/remeh/sizedwaitgroup"
	"github.com/sirupsen/logrus"

	"github.com/rigelrozanski/tunetrack/abc"
)

var ErrNoSettings = errors.New("tune has no settings")

// Imported is a tune ready to be stored: the first setting's ABC completed
// with headers, plus the metadata a tune record needs.
type Imported struct {
	SessionID   int
	Title       string
	Type        string
	OriginalKey string
	Key         string // entry of the key catalogue, empty if none matched
	Meter       string
	ABC         string
	Notes       string
}

// Import fetches the tune and converts its first setting. The original key
// is matched against the catalogue on a best effort basis.
func (c *Client) Import(ctx context.Context, id int, catalogue []string) (*Imported, error) {
	tune, err := c.Tune(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(tune.Settings) == 0 {
		return nil, errors.Wrapf(ErrNoSettings, "tune %d", id)
	}
	return convert(tune, tune.Settings[0], catalogue, c.log), nil
}

func convert(tune *Tune, s Setting, catalogue []string, log logrus.FieldLogger) *Imported {
	im := &Imported{
		SessionID:   tune.ID,
		Title:       tune.Name,
		Type:        tune.Type,
		OriginalKey: s.Key,
		Meter:       abc.ResolveMeter(s.Meter, s.ABC, tune.Type),
	}
	if s.Key != "" {
		if k, ok := abc.MatchKey(s.Key, catalogue); ok {
			im.Key = k
		} else {
			log.WithField("key", s.Key).Warn("no catalogue key matches")
		}
	}
	im.ABC = abc.CleanAndComplete(s.ABC, abc.Meta{
		Title: tune.Name,
		Key:   s.Key,
		Meter: im.Meter,
	})
	im.Notes = fmt.Sprintf("Imported from The Session (tune #%d)", tune.ID)
	if s.Key != "" {
		im.Notes += "\nOriginal key: " + s.Key
	}
	return im
}

// SetTune is one tune of a random set. ABC and Key are empty when the
// tune's details could not be fetched.
type SetTune struct {
	ID    int
	Title string
	Type  string
	Key   string
	ABC   string
}

// RandomSet picks n popular tunes at random and fetches their details with
// at most workers requests in flight. A tune whose details fail to load is
// kept with only its name and type.
func (c *Client) RandomSet(ctx context.Context, n, workers int, rnd *rand.Rand) ([]SetTune, error) {
	start := time.Now()
	popular, err := c.Popular(ctx, 100)
	if err != nil {
		return nil, err
	}
	if len(popular) == 0 {
		return nil, errors.Wrap(ErrNotFound, "no popular tunes")
	}
	rnd.Shuffle(len(popular), func(i, j int) {
		popular[i], popular[j] = popular[j], popular[i]
	})
	if n > len(popular) {
		n = len(popular)
	}
	picked := popular[:n]

	if workers < 1 {
		workers = 1
	}
	set := make([]SetTune, len(picked))
	wg := sizedwaitgroup.New(workers)
	for i, summary := range picked {
		wg.Add()
		go func(i int, summary TuneSummary) {
			defer wg.Done()
			set[i] = c.setTune(ctx, summary)
		}(i, summary)
	}
	wg.Wait()

	c.log.WithField("tunes", len(set)).Debugf("random set built in %s",
		durafmt.Parse(time.Since(start)).LimitFirstN(2))
	return set, nil
}

func (c *Client) setTune(ctx context.Context, summary TuneSummary) SetTune {
	st := SetTune{ID: summary.ID, Title: summary.Name, Type: summary.Type}
	tune, err := c.Tune(ctx, summary.ID)
	if err != nil {
		c.log.WithError(err).Warnf("could not fetch tune %d", summary.ID)
		return st
	}
	if tune.Name != "" {
		st.Title = tune.Name
	}
	if tune.Type != "" {
		st.Type = tune.Type
	}
	if len(tune.Settings) == 0 {
		return st
	}
	s := tune.Settings[0]
	st.Key = s.Key
	if s.ABC != "" {
		st.ABC = abc.CleanAndComplete(s.ABC, abc.Meta{Title: st.Title, Key: s.Key, Meter: s.Meter})
	}
	return st
}
