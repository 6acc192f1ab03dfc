// Copyright (c) 2025 Visvasity LLC

// Package bytevec implements a type-erased growable array. Elements are
// fixed-size byte strings stored back to back in a single owned buffer; the
// element size is chosen at construction and never changes.
//
// A Vector is not safe for concurrent use.
package bytevec

import (
	"fmt"
	"runtime"
)

const (
	// MinCapacity is the default capacity floor. Smaller requests are
	// rounded up to it.
	MinCapacity = 20

	// MaxBytes is the default ceiling on capacity*elemSize.
	MaxBytes = 1000000

	// GrowthFactor is the capacity multiplier used when a full vector needs
	// one more slot.
	GrowthFactor = 2
)

// Limits holds the allocation policy of a vector.
type Limits struct {
	// MinCapacity is the smallest capacity a vector is constructed with. It
	// must be at least one so that growth by GrowthFactor makes progress.
	MinCapacity int

	// MaxBytes caps the storage size in bytes, for construction and growth.
	MaxBytes int
}

// DefaultLimits is used by New.
var DefaultLimits = Limits{
	MinCapacity: MinCapacity,
	MaxBytes:    MaxBytes,
}

func (l Limits) validate() error {
	if l.MinCapacity < 1 {
		return fmt.Errorf("min capacity %d must be positive: %w", l.MinCapacity, ErrInvalidLimits)
	}
	if l.MaxBytes < 0 {
		return fmt.Errorf("max bytes %d must not be negative: %w", l.MaxBytes, ErrInvalidLimits)
	}
	return nil
}

// Vector is a growable array of fixed size elements.
type Vector struct {
	capacity int
	count    int
	elemSize int

	data []byte

	limits   Limits
	released bool

	// alloc returns a zeroed buffer of n bytes.
	alloc func(n int) ([]byte, error)
}

// New creates an empty vector for elements of elemSize bytes, with room for at
// least capacity elements, using DefaultLimits.
func New(capacity, elemSize int) (*Vector, error) {
	return NewWithLimits(capacity, elemSize, DefaultLimits)
}

// NewWithLimits is like New, but with an explicit allocation policy. The
// capacity is raised to limits.MinCapacity if smaller. Returns
// ErrAllocationLimit if the storage would exceed limits.MaxBytes and
// ErrOutOfMemory if it could not be allocated.
func NewWithLimits(capacity, elemSize int, limits Limits) (*Vector, error) {
	if err := limits.validate(); err != nil {
		return nil, err
	}
	if capacity < 0 || elemSize < 0 {
		return nil, fmt.Errorf("capacity %d and element size %d must not be negative: %w", capacity, elemSize, ErrInvalidLimits)
	}
	v := &Vector{
		elemSize: elemSize,
		limits:   limits,
		alloc:    makeBytes,
	}
	if err := v.init(capacity); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vector) init(capacity int) error {
	capacity = max(capacity, v.limits.MinCapacity)
	if err := v.checkLimit(capacity); err != nil {
		return err
	}
	data, err := v.alloc(capacity * v.elemSize)
	if err != nil {
		return err
	}
	v.data = data
	v.capacity = capacity
	v.count = 0
	return nil
}

// Destroy releases the storage of *vp and sets *vp to nil. It is a no-op if
// vp or *vp is nil. Using any other reference to a destroyed vector panics
// with ErrUseAfterDestroy.
func Destroy(vp **Vector) {
	if vp == nil || *vp == nil {
		return
	}
	v := *vp
	v.data = nil
	v.capacity = 0
	v.count = 0
	v.released = true
	*vp = nil
}

func (v *Vector) mustLive() {
	if v.released {
		panic(ErrUseAfterDestroy)
	}
}

func (v *Vector) checkLimit(capacity int) error {
	// capacity*elemSize must neither exceed MaxBytes nor overflow.
	if v.elemSize != 0 && capacity > v.limits.MaxBytes/v.elemSize {
		return fmt.Errorf("%d elements of %d bytes exceed %d bytes: %w", capacity, v.elemSize, v.limits.MaxBytes, ErrAllocationLimit)
	}
	return nil
}

// makeBytes allocates a zeroed buffer. Allocation panics raised by the runtime
// for unsatisfiable sizes are reported as ErrOutOfMemory.
func makeBytes(n int) (data []byte, status error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			data, status = nil, fmt.Errorf("allocating %d bytes: %v: %w", n, r, ErrOutOfMemory)
		}
	}()
	return make([]byte, n), nil
}

// Len returns the number of elements in the vector.
func (v *Vector) Len() int {
	v.mustLive()
	return v.count
}

// Cap returns the number of elements the vector can hold without growing.
func (v *Vector) Cap() int {
	v.mustLive()
	return v.capacity
}

// ElemSize returns the size of one element in bytes.
func (v *Vector) ElemSize() int {
	v.mustLive()
	return v.elemSize
}

// Empty reports whether the vector has no elements.
func (v *Vector) Empty() bool {
	v.mustLive()
	return v.count == 0
}

// Limits returns the allocation policy of the vector.
func (v *Vector) Limits() Limits {
	v.mustLive()
	return v.limits
}

// MaxBytes returns the storage size ceiling of the vector in bytes.
func (v *Vector) MaxBytes() int {
	v.mustLive()
	return v.limits.MaxBytes
}

// Reserve grows the storage to hold at least n elements. It is a no-op if the
// capacity is already n or more. On failure the vector is left unchanged.
//
// All capacity slots are carried over to the new storage, including stale
// bytes past Len.
func (v *Vector) Reserve(n int) error {
	v.mustLive()
	if n <= v.capacity {
		return nil
	}
	if err := v.checkLimit(n); err != nil {
		return err
	}
	data, err := v.alloc(n * v.elemSize)
	if err != nil {
		return err
	}
	copy(data, v.data[:v.capacity*v.elemSize])
	v.data = data
	v.capacity = n
	return nil
}

// grow makes room for one more element when the vector is full.
func (v *Vector) grow() error {
	if v.count < v.capacity {
		return nil
	}
	return v.Reserve(v.capacity * GrowthFactor)
}

// ShrinkToFit reallocates the storage to exactly Len elements, or a single
// element when Len is zero or one. On failure the vector is left unchanged.
func (v *Vector) ShrinkToFit() error {
	v.mustLive()
	n := max(v.count, 1)
	data, err := v.alloc(n * v.elemSize)
	if err != nil {
		return err
	}
	copy(data, v.data[:min(n, v.capacity)*v.elemSize])
	v.data = data
	v.capacity = n
	return nil
}
