package types

import "errors"

// Standard errors returned by the store and the CLI.
var (
	// ErrStoreClosed is returned when an operation is attempted on a
	// store that has been closed or was never opened.
	ErrStoreClosed = errors.New("store is closed")

	// ErrDBPathEmpty is returned by Config.Validate and store.Open
	// when no database path could be resolved.
	ErrDBPathEmpty = errors.New("database path must not be empty")

	// ErrModeConflict is returned when more than one etymology mode
	// flag is supplied on a single invocation.
	ErrModeConflict = errors.New("only one mode may be selected per invocation")

	// ErrRootEmpty and ErrPrimaryMeaningEmpty are returned by
	// RootMeaning.Validate.
	ErrRootEmpty           = errors.New("root must not be empty")
	ErrPrimaryMeaningEmpty = errors.New("primary meaning must not be empty")
)
