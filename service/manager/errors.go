package manager

import "errors"

var (
	// ErrCapacityReached is returned by the bounded manager when it is full.
	ErrCapacityReached = errors.New("task manager: capacity reached")

	// ErrInvalidCapacity is returned when a manager is created with capacity <= 0.
	ErrInvalidCapacity = errors.New("task manager: invalid capacity")

	// ErrUnsupportedMode is returned by New for an unknown mode.
	ErrUnsupportedMode = errors.New("task manager: unsupported mode")

	// ErrInvalidProcess is returned when a process has an empty pid or an unknown priority.
	ErrInvalidProcess = errors.New("task manager: invalid process")

	// ErrDuplicatePID is returned when WithUniquePIDs is set and the pid is already tracked.
	ErrDuplicatePID = errors.New("task manager: duplicate pid")
)
