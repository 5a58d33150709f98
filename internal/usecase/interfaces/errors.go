package interfaces

import "errors"

// Storage adapters translate their conditional-write failures into these two
// errors so usecases never depend on a specific backend.
var (
	// ErrVersionConflict: the stored version no longer matches the one the
	// caller loaded, or the record disappeared in between.
	ErrVersionConflict = errors.New("version conflict")
	// ErrItemExists: a create hit an id that is already taken.
	ErrItemExists = errors.New("item already exists")
)
