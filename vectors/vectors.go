// Copyright (c) 2025 Visvasity LLC

// Package vectors holds vecgen output for the sample input types.
package vectors

//go:generate go run github.com/visvasity/bytevec -inpkg github.com/visvasity/bytevec/input -outdir . Point Sample
