package model

import "errors"

var (
	// ErrNotFound is returned when a required directory, source file or class
	// map file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPrefix is returned when a modern prefix does not end with the
	// namespace separator.
	ErrInvalidPrefix = errors.New("invalid prefix")

	// ErrInvalidFormat is returned when a class map is not a mapping of
	// strings to strings, or when an entry has no usable path.
	ErrInvalidFormat = errors.New("invalid class map format")

	// ErrUnresolved is returned by strict lookups that miss.
	ErrUnresolved = errors.New("unresolved identifier")
)
