// Copyright (c) 2025 Visvasity LLC

package bytevec

import (
	"bytes"
	"fmt"
	"math"
)

func indexError(op string, i, n, c int) string {
	return fmt.Sprintf("%s: index %d is out of range [0:%d:%d]", op, i, n, c)
}

func (v *Vector) checkElem(op string, x []byte) {
	if len(x) != v.elemSize {
		panic(fmt.Sprintf("%s: element has %d bytes, vector element size is %d", op, len(x), v.elemSize))
	}
}

// PushBack appends a copy of x, growing the storage if the vector is full. x
// must be exactly ElemSize bytes long. On failure the vector is unchanged.
func (v *Vector) PushBack(x []byte) error {
	v.mustLive()
	v.checkElem("PushBack", x)
	if err := v.grow(); err != nil {
		return err
	}
	copy(v.slot(v.count), x)
	v.count++
	return nil
}

// PopBack removes the last element, if any. Its bytes stay in the storage.
func (v *Vector) PopBack() {
	v.mustLive()
	if v.count == 0 {
		return
	}
	v.count--
}

// Clear removes all elements without touching the storage.
func (v *Vector) Clear() {
	v.mustLive()
	v.count = 0
}

// Insert places a copy of x at index i, shifting the elements at i and after
// one slot towards the end. Inserting at Len appends. Returns the inserted
// element, or nil without modifying the vector if i is not in [0, Len] or the
// storage could not grow.
func (v *Vector) Insert(i int, x []byte) Elem {
	v.mustLive()
	v.checkElem("Insert", x)
	if i < 0 || i > v.count {
		return nil
	}
	// x may point into the storage, which the shift below overwrites.
	x = bytes.Clone(x)
	if err := v.grow(); err != nil {
		return nil
	}
	beg := i * v.elemSize
	end := v.count * v.elemSize
	copy(v.data[beg+v.elemSize:], v.data[beg:end])
	e := v.slot(i)
	copy(e, x)
	v.count++
	return e
}

// Erase removes the element at index i, shifting the following elements one
// slot towards the front. Returns the slot at index i, which now holds the
// element that followed the erased one. When the last element is erased the
// returned slot is past Len and holds the erased bytes. Returns nil without
// modifying the vector if i is not in [0, Len).
func (v *Vector) Erase(i int) Elem {
	v.mustLive()
	if i < 0 || i >= v.count {
		return nil
	}
	beg := i * v.elemSize
	end := v.count * v.elemSize
	copy(v.data[beg:], v.data[beg+v.elemSize:end])
	v.count--
	return v.slot(i)
}

// Resize sets the number of elements to n. Shrinking only drops elements
// from the end, leaving their bytes in place. Growing doubles the capacity
// until it holds n elements and zero-fills the new elements.
func (v *Vector) Resize(n int) error {
	v.mustLive()
	if n < 0 {
		panic(fmt.Sprintf("Resize: negative size %d", n))
	}
	if n <= v.count {
		v.count = n
		return nil
	}
	if err := v.growTo(n); err != nil {
		return err
	}
	SetZero(v.data[v.count*v.elemSize : n*v.elemSize])
	v.count = n
	return nil
}

// ResizeFill is like Resize, but new elements are copies of fill.
func (v *Vector) ResizeFill(n int, fill []byte) error {
	v.mustLive()
	v.checkElem("ResizeFill", fill)
	if n < 0 {
		panic(fmt.Sprintf("ResizeFill: negative size %d", n))
	}
	if n <= v.count {
		v.count = n
		return nil
	}
	if err := v.growTo(n); err != nil {
		return err
	}
	for i := v.count; i < n; i++ {
		copy(v.slot(i), fill)
	}
	v.count = n
	return nil
}

// growTo doubles the capacity until it is at least n. The vector is unchanged
// on failure.
func (v *Vector) growTo(n int) error {
	c := v.capacity
	for c < n {
		if c > math.MaxInt/GrowthFactor {
			c = n
			break
		}
		c *= GrowthFactor
	}
	if c == v.capacity {
		return nil
	}
	return v.Reserve(c)
}

// Swap exchanges the contents of two vectors, including their capacity and
// element size, without copying any elements.
func Swap(a, b *Vector) {
	a.mustLive()
	b.mustLive()
	*a, *b = *b, *a
}
