package primstore

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound   = errors.New("primstore: not found")
	ErrCorrupt    = errors.New("primstore: corrupt entry")
	ErrNilStorage = errors.New("primstore: storage is required")
)

// SweepError reports entries that an expired-object sweep found but failed to
// delete. The sweep keeps going past individual failures.
type SweepError struct {
	Failed map[string]error // storage key -> delete error
}

func (e *SweepError) Error() string {
	switch len(e.Failed) {
	case 0:
		return "sweep: unknown error"
	case 1:
		for k, err := range e.Failed {
			return fmt.Sprintf("sweep: delete %q failed: %v", k, err)
		}
	}
	parts := make([]string, 0, len(e.Failed))
	for k, err := range e.Failed {
		parts = append(parts, fmt.Sprintf("%q: %v", k, err))
	}
	return fmt.Sprintf("sweep: %d deletes failed: %s", len(e.Failed), strings.Join(parts, "; "))
}

func (e *SweepError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, err := range e.Failed {
		errs = append(errs, err)
	}
	return errs
}
