package tableview

import "errors"

// Configuration errors. They are returned immediately and never retried.
var (
	ErrNoContainer    = errors.New("tableview: no container bound")
	ErrNoDataSource   = errors.New("tableview: no data source set")
	ErrNoSizeProvider = errors.New("tableview: size provider required by layout")
	ErrUnregistered   = errors.New("tableview: no template registered for identifier")
	ErrInvalidConfig  = errors.New("tableview: invalid config")
)

// Invariant violations. These indicate a defect in the engine or in a host
// that mutates cells behind its back.
var (
	ErrNotLive        = errors.New("tableview: cell is not live")
	ErrDuplicateIndex = errors.New("tableview: index already bound to a live cell")
)

// Misuse of the API.
var (
	ErrReentrant       = errors.New("tableview: reload during layout pass")
	ErrIndexOutOfRange = errors.New("tableview: index out of range")
	ErrNotLoaded       = errors.New("tableview: view not loaded")
)
