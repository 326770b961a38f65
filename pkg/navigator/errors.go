package navigator

import (
	"errors"
	"fmt"
)

// ErrUnknownFrontend is returned by Run for a Frontend it cannot start.
var ErrUnknownFrontend = errors.New("unknown frontend")

// FrontendError reports a failure setting up or running a frontend, such as
// SDL failing to open a window or no usable font being found. These errors
// are fatal for the demo; navigation errors are handled inside the frontends.
type FrontendError struct {
	Frontend Frontend // Frontend that failed
	Op       string   // Operation that failed (e.g., "localize", "run")
	Err      error    // Underlying error
}

func (e *FrontendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navigator: %s: %s: %v", e.Frontend, e.Op, e.Err)
	}
	return fmt.Sprintf("navigator: %s: %s", e.Frontend, e.Op)
}

func (e *FrontendError) Unwrap() error {
	return e.Err
}

func newFrontendError(frontend Frontend, op string, err error) *FrontendError {
	return &FrontendError{Frontend: frontend, Op: op, Err: err}
}

// IsFrontendError checks if an error is a frontend error.
func IsFrontendError(err error) bool {
	var frontendErr *FrontendError
	return errors.As(err, &frontendErr)
}
