package api

import (
	"errors"
	"fmt"
)

// Feed identifies which dashboard collection a load error belongs to.
type Feed string

const (
	FeedSources Feed = "sources"
	FeedAlerts  Feed = "alerts"
	FeedTrend   Feed = "trend"
)

// LoadError reports a failed fetch for a single feed. The cause is either a
// *StatusError (non-2xx response), a decode error, or a transport error.
type LoadError struct {
	Feed  Feed
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s failed: %v", e.Feed, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("HTTP %d", e.Code)
}

// FailedFeed extracts the feed name from a load error chain.
// Returns empty string when err is not a LoadError.
func FailedFeed(err error) Feed {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Feed
	}
	return ""
}
