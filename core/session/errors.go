package session

import "errors"

// ErrNilStore is returned when a Manager is created without a backing store.
var ErrNilStore = errors.New("session: nil store")
