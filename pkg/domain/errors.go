package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrMissingDependency is returned when a seed step runs before the rows it
	// references have been created.
	ErrMissingDependency = errors.New("missing dependency")
	// ErrInvalidSeedData is returned when seed input cannot produce a valid row
	ErrInvalidSeedData = errors.New("invalid seed data")
	// ErrAccountNumberCollision is returned when two users derive the same account number
	ErrAccountNumberCollision = errors.New("account number collision")
)
