package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g. Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrDriverRequired reports a renderer constructed without a prompt
	// driver.
	ErrDriverRequired = errors.New("tui: prompt driver is required")
)
