package storage

import "errors"

// ErrNotFound indicates a requested record does not exist in storage.
var ErrNotFound = errors.New("record not found")
