package domain

import "errors"

// ErrValidation is returned when input fails a business rule (missing
// required field, end date before start date, capacity below the
// minimum). Screens surface it inline and never mutate state.
var ErrValidation = errors.New("validation error")

// ErrUnauthenticated is returned when an operation that requires a
// session identity is attempted without one. Screens surface it as a
// dismissible notification.
var ErrUnauthenticated = errors.New("not signed in")
