package router

import (
	"errors"
	"fmt"
)

// Sentinel errors for router misuse. They describe wiring mistakes in the
// host application and are never retried.
var (
	// ErrDuplicateRoute indicates a pattern was registered twice.
	ErrDuplicateRoute = errors.New("route already registered")

	// ErrUnknownRoute indicates a pattern or path that matches no registered route.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrNotStarted indicates an operation that requires Start to have been called.
	ErrNotStarted = errors.New("router not started")

	// ErrAlreadyStarted indicates Start was called twice, or Register after Start.
	ErrAlreadyStarted = errors.New("router already started")

	// ErrEmptyStack indicates a pop that would remove the last remaining entry.
	ErrEmptyStack = errors.New("cannot pop the last back stack entry")

	// ErrInvalidPattern indicates a malformed route pattern.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrNilRender indicates a route registered without a render callback.
	ErrNilRender = errors.New("nil render callback")
)

// RouteError records the router operation and route involved in a failure.
type RouteError struct {
	Op    string // Operation that failed (e.g., "navigate", "pop")
	Route string // Pattern or path the operation was given, if any
	Err   error  // One of the sentinel errors above
}

func (e *RouteError) Error() string {
	if e.Route != "" {
		return fmt.Sprintf("router: %s %s: %v", e.Op, e.Route, e.Err)
	}
	return fmt.Sprintf("router: %s: %v", e.Op, e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

func newRouteError(op, route string, err error) *RouteError {
	return &RouteError{Op: op, Route: route, Err: err}
}

// IsEmptyStack reports whether err was caused by popping the last entry.
// Frontends use it to treat "back" on the start screen as an exit request.
func IsEmptyStack(err error) bool {
	return errors.Is(err, ErrEmptyStack)
}

// IsUnknownRoute reports whether err was caused by an unregistered route.
func IsUnknownRoute(err error) bool {
	return errors.Is(err, ErrUnknownRoute)
}
