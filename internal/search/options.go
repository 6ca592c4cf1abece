package search

import (
	"math/rand/v2"
	"time"
)

// Defaults for Options.
const (
	DefaultURL           = "https://www.google.com"
	DefaultResultLimit   = 1000
	DefaultTimeout       = 60 * time.Second
	DefaultQuerySelector = `textarea[name="q"], input[name="q"]`
	DefaultUserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// Options configures a Browser.
type Options struct {
	// URL is the search engine start page.
	URL string

	// QuerySelector locates the query input on the start page.
	QuerySelector string

	// Headless hides the browser window.
	Headless bool

	// UserAgent overrides Chrome's user agent. Empty keeps Chrome's own.
	UserAgent string

	// ExecPath points at a specific Chrome binary. Empty searches PATH.
	ExecPath string

	// ResultLimit is the maximum number of characters returned.
	ResultLimit int

	// Timeout bounds a whole query, delays included.
	Timeout time.Duration

	// SettleMin and SettleMax bound the random wait after the start page
	// loads.
	SettleMin, SettleMax time.Duration

	// ResultsMin and ResultsMax bound the random wait after submitting.
	ResultsMin, ResultsMax time.Duration
}

// DefaultOptions returns options matching a person typing into a visible
// browser window.
func DefaultOptions() Options {
	return Options{
		URL:           DefaultURL,
		QuerySelector: DefaultQuerySelector,
		UserAgent:     DefaultUserAgent,
		ResultLimit:   DefaultResultLimit,
		Timeout:       DefaultTimeout,
		SettleMin:     2 * time.Second,
		SettleMax:     4 * time.Second,
		ResultsMin:    3 * time.Second,
		ResultsMax:    5 * time.Second,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.URL == "" {
		o.URL = d.URL
	}
	if o.QuerySelector == "" {
		o.QuerySelector = d.QuerySelector
	}
	if o.ResultLimit <= 0 {
		o.ResultLimit = d.ResultLimit
	}
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	return o
}

// jitter returns a uniformly random duration in [min, max]. When max is not
// above min it returns min.
func jitter(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + rand.N(max-min+1)
}
