// Copyright (c) 2025 Visvasity LLC

package bytevec

import "bytes"

// EraseIfEqual erases every element whose bytes are equal to x and returns
// the number of elements erased. The remaining elements keep their relative
// order. Padding bytes take part in the comparison.
func (v *Vector) EraseIfEqual(x []byte) int {
	v.mustLive()
	v.checkElem("EraseIfEqual", x)
	// x may point into the storage, which moves as elements are erased.
	x = bytes.Clone(x)
	return v.EraseIf(func(e Elem) bool {
		return bytes.Equal(e, x)
	})
}

// EraseIf erases every element for which pred returns true and returns the
// number of elements erased. Elements are tested in order, once each; pred
// must not modify the vector.
func (v *Vector) EraseIf(pred func(Elem) bool) int {
	v.mustLive()
	nerased := 0
	for i := 0; i < v.count; {
		if pred(v.slot(i)) {
			v.Erase(i)
			nerased++
			continue
		}
		i++
	}
	return nerased
}

// ShallowEqual reports whether a and b have the same element size and the
// same elements, compared as raw bytes.
func ShallowEqual(a, b *Vector) bool {
	a.mustLive()
	b.mustLive()
	if a.count != b.count || a.elemSize != b.elemSize {
		return false
	}
	n := a.count * a.elemSize
	return bytes.Equal(a.data[:n], b.data[:n])
}
