package config

import "errors"

var (
	// ErrUnknownAxisKind means a [styles] entry declared a kind other than
	// "boolean" or "value".
	ErrUnknownAxisKind = errors.New("unknown style axis kind")

	// ErrUnknownLogLevel means the logging level is not one the engine knows.
	ErrUnknownLogLevel = errors.New("unknown logging level")

	// ErrWatcherClosed means an operation was attempted on a closed watcher.
	ErrWatcherClosed = errors.New("config watcher closed")
)
