package errors

import "fmt"

var (
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrListingNotFound     = fmt.Errorf("listing not found")
	ErrListingExists       = fmt.Errorf("listing already exists")
	ErrSelfTransaction     = fmt.Errorf("actor owns this listing")
	ErrProfileLookupFailed = fmt.Errorf("profile lookup failed")
	ErrUnknownPlayer       = fmt.Errorf("unknown player name")
	ErrNotificationFailed  = fmt.Errorf("owner notification failed")
	ErrMalformedToken      = fmt.Errorf("malformed correlation token")
)
