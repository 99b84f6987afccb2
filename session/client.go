package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://thesession.org"
	DefaultUserAgent = "tunetrack (github.com/rigelrozanski/tunetrack)"
)

var ErrNotFound = errors.New("not found")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// Client talks to the JSON interface of thesession.org. Requests are made
// once; there are no retries.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	log       logrus.FieldLogger
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRate limits the client to perSecond requests, with bursts of one.
// Zero or less removes the limit.
func WithRate(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		http:      &http.Client{Timeout: 30 * time.Second},
		limiter:   rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search finds tunes by name.
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	q := url.Values{"q": {query}}
	var res SearchResult
	if err := c.get(ctx, "/tunes/search", q, &res); err != nil {
		return nil, errors.Wrapf(err, "search %q", query)
	}
	return &res, nil
}

// Tune fetches a tune with all of its settings.
func (c *Client) Tune(ctx context.Context, id int) (*Tune, error) {
	var tune Tune
	if err := c.get(ctx, "/tunes/"+strconv.Itoa(id), nil, &tune); err != nil {
		return nil, errors.Wrapf(err, "tune %d", id)
	}
	return &tune, nil
}

// Popular lists the most popular tunes, one page of perPage entries.
func (c *Client) Popular(ctx context.Context, perPage int) ([]TuneSummary, error) {
	q := url.Values{"perpage": {strconv.Itoa(perPage)}}
	var res SearchResult
	if err := c.get(ctx, "/tunes/popular", q, &res); err != nil {
		return nil, errors.Wrap(err, "popular tunes")
	}
	return res.Tunes, nil
}

// Sets lists the sets members have recorded that include the tune.
func (c *Client) Sets(ctx context.Context, tuneID int) ([]Set, error) {
	var res struct {
		Sets []Set `json:"sets"`
	}
	if err := c.get(ctx, "/tunes/"+strconv.Itoa(tuneID)+"/sets", nil, &res); err != nil {
		return nil, errors.Wrapf(err, "sets of tune %d", tuneID)
	}
	return res.Sets, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, v interface{}) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("format", "json")
	u := c.baseURL + path + "?" + q.Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	c.log.WithFields(logrus.Fields{
		"url":     u,
		"status":  resp.StatusCode,
		"elapsed": time.Since(start),
	}).Debug("session request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: u, StatusCode: resp.StatusCode}
	}
	return errors.Wrap(json.NewDecoder(resp.Body).Decode(v), "decoding response")
}
