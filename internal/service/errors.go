package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrNoActiveSession is returned by [SessionService.Resolve] when the
	// presented session identifier does not map to a live session. Callers
	// treat it as "anonymous visitor", not as a failure.
	ErrNoActiveSession = errors.New("no active session")
)
