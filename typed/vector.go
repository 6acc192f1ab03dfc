// Copyright (c) 2025 Visvasity LLC

// Package typed provides a type-safe view over bytevec vectors. Elements are
// copied in and out of the byte storage as raw memory, so the element type
// must not hold pointers.
package typed

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"unsafe"

	"github.com/visvasity/bytevec/bytevec"
)

// ErrPointerType is returned for element types that hold references.
var ErrPointerType = errors.New("typed: element type must not contain pointers")

// Vector is a growable array of T values kept in a bytevec.Vector.
type Vector[T any] struct {
	v *bytevec.Vector
}

// New creates an empty vector with room for at least capacity elements, using
// bytevec.DefaultLimits.
func New[T any](capacity int) (*Vector[T], error) {
	return NewWithLimits[T](capacity, bytevec.DefaultLimits)
}

// NewWithLimits is like New, but with an explicit allocation policy.
func NewWithLimits[T any](capacity int, limits bytevec.Limits) (*Vector[T], error) {
	if err := checkPointerFree(reflect.TypeFor[T]()); err != nil {
		return nil, err
	}
	v, err := bytevec.NewWithLimits(capacity, SizeFor[T](), limits)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{v: v}, nil
}

// Destroy releases the storage of *vp and sets *vp to nil. It is a no-op if
// vp or *vp is nil.
func Destroy[T any](vp **Vector[T]) {
	if vp == nil || *vp == nil {
		return
	}
	// Other references keep the released core vector, so using them panics
	// with bytevec.ErrUseAfterDestroy.
	v := (*vp).v
	bytevec.Destroy(&v)
	*vp = nil
}

// SizeFor returns the size of T in bytes.
func SizeFor[T any]() int {
	return int(reflect.TypeFor[T]().Size())
}

func checkPointerFree(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Array:
		if err := checkPointerFree(t.Elem()); err != nil {
			return fmt.Errorf("array %v: %w", t, err)
		}
		return nil
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if err := checkPointerFree(f.Type); err != nil {
				return fmt.Errorf("field %s.%s: %w", t, f.Name, err)
			}
		}
		return nil
	}
	return fmt.Errorf("type %v of kind %s: %w", t, t.Kind(), ErrPointerType)
}

// bytesOf returns the memory of *p as a byte slice.
func bytesOf[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

func valueOf[T any](e bytevec.Elem) T {
	var x T
	copy(bytesOf(&x), e)
	return x
}

// Bytes returns the underlying type-erased vector.
func (v *Vector[T]) Bytes() *bytevec.Vector {
	return v.v
}

func (v *Vector[T]) Len() int {
	return v.v.Len()
}

func (v *Vector[T]) Cap() int {
	return v.v.Cap()
}

func (v *Vector[T]) Empty() bool {
	return v.v.Empty()
}

func (v *Vector[T]) Reserve(n int) error {
	return v.v.Reserve(n)
}

func (v *Vector[T]) ShrinkToFit() error {
	return v.v.ShrinkToFit()
}

// At returns the element at index i. The boolean is false if i is not in
// [0, Len).
func (v *Vector[T]) At(i int) (T, bool) {
	e := v.v.At(i)
	if e == nil {
		var zero T
		return zero, false
	}
	return valueOf[T](e), true
}

// AtUnchecked returns the slot at index i, which must be in [0, Cap). Slots
// past Len hold stale values.
func (v *Vector[T]) AtUnchecked(i int) T {
	return valueOf[T](v.v.AtUnchecked(i))
}

// Set replaces the element at index i. Returns false if i is not in [0, Len).
func (v *Vector[T]) Set(i int, x T) bool {
	e := v.v.At(i)
	if e == nil {
		return false
	}
	copy(e, bytesOf(&x))
	return true
}

func (v *Vector[T]) Front() (T, bool) {
	return v.At(0)
}

func (v *Vector[T]) Back() (T, bool) {
	return v.At(v.v.Len() - 1)
}

func (v *Vector[T]) PushBack(x T) error {
	return v.v.PushBack(bytesOf(&x))
}

func (v *Vector[T]) PopBack() {
	v.v.PopBack()
}

func (v *Vector[T]) Clear() {
	v.v.Clear()
}

// Insert places x at index i, which must be in [0, Len]. Returns false without
// modifying the vector on a bad index or a failed growth.
func (v *Vector[T]) Insert(i int, x T) bool {
	return v.v.Insert(i, bytesOf(&x)) != nil
}

// Erase removes the element at index i. Returns false if i is not in [0, Len).
func (v *Vector[T]) Erase(i int) bool {
	return v.v.Erase(i) != nil
}

// Resize sets the number of elements to n, zero-filling new elements.
func (v *Vector[T]) Resize(n int) error {
	return v.v.Resize(n)
}

// ResizeFill sets the number of elements to n, filling new elements with x.
func (v *Vector[T]) ResizeFill(n int, x T) error {
	return v.v.ResizeFill(n, bytesOf(&x))
}

// EraseValue erases every element with the same memory representation as x
// and returns the number of erased elements.
func (v *Vector[T]) EraseValue(x T) int {
	return v.v.EraseIfEqual(bytesOf(&x))
}

// EraseFunc erases every element for which pred returns true and returns the
// number of erased elements.
func (v *Vector[T]) EraseFunc(pred func(T) bool) int {
	return v.v.EraseIf(func(e bytevec.Elem) bool {
		return pred(valueOf[T](e))
	})
}

// All returns an iterator over indices and copies of the elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.v.All() {
			if !yield(i, valueOf[T](e)) {
				return
			}
		}
	}
}

// Values returns a copy of the elements as a slice.
func (v *Vector[T]) Values() []T {
	xs := make([]T, 0, v.v.Len())
	for _, x := range v.All() {
		xs = append(xs, x)
	}
	return xs
}

// Equal reports whether a and b hold the same elements, compared as raw
// memory.
func Equal[T any](a, b *Vector[T]) bool {
	return bytevec.ShallowEqual(a.v, b.v)
}

// Swap exchanges the contents of a and b without copying elements.
func Swap[T any](a, b *Vector[T]) {
	bytevec.Swap(a.v, b.v)
}
