// Copyright (c) 2025 Visvasity LLC

package bytevec

import "iter"

func (v *Vector) slot(i int) Elem {
	off := i * v.elemSize
	return Elem(v.data[off : off+v.elemSize : off+v.elemSize])
}

// At returns the element at index i, or nil if i is not in [0, Len).
func (v *Vector) At(i int) Elem {
	v.mustLive()
	if i < 0 || i >= v.count {
		return nil
	}
	return v.slot(i)
}

// AtUnchecked returns the slot at index i without checking it against Len.
// Any index in [0, Cap) is accepted; slots past Len hold whatever bytes were
// last stored there, e.g. by an element since popped or erased. Panics if i is
// outside [0, Cap).
func (v *Vector) AtUnchecked(i int) Elem {
	v.mustLive()
	if i < 0 || i >= v.capacity {
		panic(indexError("AtUnchecked", i, v.count, v.capacity))
	}
	return v.slot(i)
}

// Front returns the first element, or nil if the vector is empty.
func (v *Vector) Front() Elem {
	v.mustLive()
	if v.count == 0 {
		return nil
	}
	return v.slot(0)
}

// Back returns the last element, or nil if the vector is empty.
func (v *Vector) Back() Elem {
	v.mustLive()
	if v.count == 0 {
		return nil
	}
	return v.slot(v.count - 1)
}

// Begin returns the bytes of all elements, from the first up to End.
func (v *Vector) Begin() []byte {
	v.mustLive()
	return v.data[:v.count*v.elemSize]
}

// End returns an empty view positioned one past the last element. Together
// with Begin it describes the half-open range of live elements.
func (v *Vector) End() []byte {
	v.mustLive()
	n := v.count * v.elemSize
	return v.data[n:n]
}

// Data returns the whole storage, including slots past Len.
func (v *Vector) Data() []byte {
	v.mustLive()
	return v.data
}

// All returns an iterator over the index and element of every element in
// order. The vector must not be modified during the iteration.
func (v *Vector) All() iter.Seq2[int, Elem] {
	v.mustLive()
	return func(yield func(int, Elem) bool) {
		for i := 0; i < v.count; i++ {
			if !yield(i, v.slot(i)) {
				return
			}
		}
	}
}
