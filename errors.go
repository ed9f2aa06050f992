package diarystats

import (
	"errors"
	"fmt"
)

var (
	// ErrRuleTable signals a malformed line or pattern in a rule table.
	ErrRuleTable = errors.New("diarystats: invalid rule table")

	// ErrInvalidPattern signals a common-error pattern that does not compile.
	ErrInvalidPattern = errors.New("diarystats: invalid common error pattern")

	// ErrMatchTimeout signals a common-error pattern that ran past its
	// match timeout, usually from catastrophic backtracking.
	ErrMatchTimeout = errors.New("diarystats: common error pattern timed out")
)

// ConfigurationError identifies the caller-supplied common-error rule
// that could not be used. Kind is ErrInvalidPattern or ErrMatchTimeout.
type ConfigurationError struct {
	// Index is the position of the rule in the supplied list.
	Index int
	Rule  CommonErrorRule
	Kind  error
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: rule %d (%q): %v", e.Kind, e.Index, e.Rule.Pattern, e.Err)
}

func (e *ConfigurationError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
