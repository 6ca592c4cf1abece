package search

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when a session is requested from a closed Browser.
var ErrClosed = errors.New("browser closed")

// ErrEmptyQuery is returned for blank queries.
var ErrEmptyQuery = errors.New("empty search query")

// Stages reported by AutomationSessionError.
const (
	StageLaunch   = "launch"
	StageNavigate = "navigate"
	StageQuery    = "query"
	StageExtract  = "extract"
)

// AutomationSessionError reports a browser automation failure and the stage
// at which it happened.
type AutomationSessionError struct {
	Stage string
	Err   error
}

func (e *AutomationSessionError) Error() string {
	return fmt.Sprintf("browser %s failed: %v", e.Stage, e.Err)
}

func (e *AutomationSessionError) Unwrap() error {
	return e.Err
}
