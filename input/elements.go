// Copyright (c) 2025 Visvasity LLC

// Package input holds sample element types for the vecgen generator.
package input

type Meters int32

type Flags uint16

const (
	VisibleFlag Flags = 1 << iota
	PinnedFlag
)

type Point struct {
	X, Y int32

	Depth Meters
}

type Sample struct {
	ID    uint64
	Valid bool
	Flags Flags

	Weight float32
	Score  float64

	Origin  Point
	Corners [4]Point

	Tags   [3]uint16
	Digest [8]byte
}

// The following types cannot be stored in a vector.

type WithSlice struct {
	N     int32
	Items []int32
}

type WithString struct {
	Name string
}

type WithPointer struct {
	Next *WithPointer
}

type WithInt struct {
	N int
}

type WithEmbedded struct {
	Point
	Z int32
}

type WithBadNested struct {
	Inner WithString
}
