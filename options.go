package bptreekv

import "github.com/sirupsen/logrus"

// options collects the configurable knobs of Open. The zero value,
// after applying defaults, reproduces the source database exactly.
type options struct {
	maxPages uint32
	logger   *logrus.Logger
	fileLock bool
}

func defaultOptions() options {
	return options{
		maxPages: DefaultMaxPages,
		logger:   logrus.StandardLogger(),
		fileLock: true,
	}
}

// Option configures Open.
type Option func(*options)

// WithMaxPages overrides the hard cap on resident/allocated pages.
// DefaultMaxPages (100) keeps the default fixed memory footprint at
// roughly 100 * PageSize (~400KiB); raising it trades that footprint
// for a larger working set.
func WithMaxPages(n uint32) Option {
	return func(o *options) { o.maxPages = n }
}

// WithLogger overrides the logger used for the Debug-level page
// allocation, split, root-creation and close messages. Failures are
// returned as errors and are not logged. Pass logrus.New() configured
// to discard output to silence it entirely.
func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithFileLock toggles the advisory, per-process-exclusive flock taken
// on the database file during Open. Disable it on platforms without
// flock support, or in tests that intentionally open the same path
// from a single process more than once.
func WithFileLock(enabled bool) Option {
	return func(o *options) { o.fileLock = enabled }
}
