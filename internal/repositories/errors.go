package repositories

import "errors"

// ErrNotFound reports that the requested record does not exist. It is
// kept distinct from storage failures so handlers can map it to a 404
// instead of a 500.
var ErrNotFound = errors.New("record not found")
