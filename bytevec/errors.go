// Copyright (c) 2025 Visvasity LLC

package bytevec

import "errors"

var (
	// ErrAllocationLimit is returned when a requested capacity times the
	// element size exceeds the vector's MaxBytes limit. No allocation is
	// attempted.
	ErrAllocationLimit = errors.New("bytevec: allocation limit exceeded")

	// ErrOutOfMemory is returned when the storage could not be allocated. The
	// vector, if any, keeps its previous state.
	ErrOutOfMemory = errors.New("bytevec: out of memory")

	// ErrInvalidLimits is returned for negative sizes or unusable limits.
	ErrInvalidLimits = errors.New("bytevec: invalid limits")

	// ErrUseAfterDestroy is the panic value when a destroyed vector is used.
	ErrUseAfterDestroy = errors.New("bytevec: use after destroy")
)
