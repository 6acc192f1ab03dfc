// Copyright (c) 2025 Visvasity LLC

package bytevec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Elem is a view of one element slot in a vector's storage. Writes through an
// Elem modify the vector. A nil Elem stands for an absent element.
//
// Multi-byte accessors use the host byte order, which matches the layout of a
// typed value copied into the vector as raw memory.
type Elem []byte

var zeros [4096]byte

// IsZero returns true if input slice is all zeros.
func IsZero[T ~[]byte](bs T) bool {
	size := len(bs)
	for i, sz := 0, 0; i < size; i += sz {
		sz = min(size-i, len(zeros))
		if !bytes.Equal(bs[i:i+sz], zeros[:sz]) {
			return false
		}
	}
	return true
}

// SetZero writes zeros into the input slice.
func SetZero[T ~[]byte](bs T) {
	size := len(bs)
	for i, sz := 0, 0; i < size; i += sz {
		sz = min(size-i, len(zeros))
		copy(bs[i:i+sz], zeros[:sz])
	}
}

func (v Elem) IsZero() bool {
	return IsZero(v)
}

func (v Elem) SetZero() {
	SetZero(v)
}

// Equal reports whether the element holds exactly the bytes in x.
func (v Elem) Equal(x []byte) bool {
	return bytes.Equal(v, x)
}

func (v Elem) BoolAt(offset int) bool {
	return v[offset] != 0
}

func (v Elem) SetBoolAt(offset int, x bool) {
	if x {
		v[offset] = 1
	} else {
		v[offset] = 0
	}
}

func (v Elem) Int8At(offset int) int8 {
	return int8(v[offset])
}

func (v Elem) SetInt8At(offset int, x int8) {
	v[offset] = byte(x)
}

func (v Elem) Uint8At(offset int) uint8 {
	return uint8(v[offset])
}

func (v Elem) SetUint8At(offset int, x uint8) {
	v[offset] = byte(x)
}

func (v Elem) Int16At(offset int) int16 {
	return int16(binary.NativeEndian.Uint16(v[offset : offset+2]))
}

func (v Elem) SetInt16At(offset int, x int16) {
	binary.NativeEndian.PutUint16(v[offset:offset+2], uint16(x))
}

func (v Elem) Uint16At(offset int) uint16 {
	return binary.NativeEndian.Uint16(v[offset : offset+2])
}

func (v Elem) SetUint16At(offset int, x uint16) {
	binary.NativeEndian.PutUint16(v[offset:offset+2], x)
}

func (v Elem) Int32At(offset int) int32 {
	return int32(binary.NativeEndian.Uint32(v[offset : offset+4]))
}

func (v Elem) SetInt32At(offset int, x int32) {
	binary.NativeEndian.PutUint32(v[offset:offset+4], uint32(x))
}

func (v Elem) Uint32At(offset int) uint32 {
	return binary.NativeEndian.Uint32(v[offset : offset+4])
}

func (v Elem) SetUint32At(offset int, x uint32) {
	binary.NativeEndian.PutUint32(v[offset:offset+4], x)
}

func (v Elem) Int64At(offset int) int64 {
	return int64(binary.NativeEndian.Uint64(v[offset : offset+8]))
}

func (v Elem) SetInt64At(offset int, x int64) {
	binary.NativeEndian.PutUint64(v[offset:offset+8], uint64(x))
}

func (v Elem) Uint64At(offset int) uint64 {
	return binary.NativeEndian.Uint64(v[offset : offset+8])
}

func (v Elem) SetUint64At(offset int, x uint64) {
	binary.NativeEndian.PutUint64(v[offset:offset+8], x)
}

func (v Elem) Float32At(offset int) float32 {
	return math.Float32frombits(v.Uint32At(offset))
}

func (v Elem) SetFloat32At(offset int, x float32) {
	v.SetUint32At(offset, math.Float32bits(x))
}

func (v Elem) Float64At(offset int) float64 {
	return math.Float64frombits(v.Uint64At(offset))
}

func (v Elem) SetFloat64At(offset int, x float64) {
	v.SetUint64At(offset, math.Float64bits(x))
}

// ByteSliceAt returns a copy of the bytes at the given offset.
func (v Elem) ByteSliceAt(offset int, size int) []byte {
	bs := make([]byte, size)
	copy(bs, v[offset:offset+size])
	return bs
}

func (v Elem) SetByteSliceAt(offset int, bs []byte) {
	copy(v[offset:offset+len(bs)], bs)
}

// Number is the set of numeric types that can be read from or written to an
// element at a byte offset.
type Number interface {
	constraints.Integer | constraints.Float
}

// NumberAt decodes a number of type T at the given offset. Types with a
// platform dependent size (int, uint, uintptr) use the host word size.
func NumberAt[T Number](v Elem, offset int) T {
	var x T
	rv := reflect.ValueOf(&x).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(v.signedAt(offset, int(rv.Type().Size())))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rv.SetUint(v.unsignedAt(offset, int(rv.Type().Size())))
	case reflect.Float32:
		rv.SetFloat(float64(v.Float32At(offset)))
	case reflect.Float64:
		rv.SetFloat(v.Float64At(offset))
	default:
		panic(fmt.Sprintf("NumberAt: unhandled kind %s", rv.Kind()))
	}
	return x
}

// SetNumberAt encodes x at the given offset.
func SetNumberAt[T Number](v Elem, offset int, x T) {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.setUnsignedAt(offset, int(rv.Type().Size()), uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.setUnsignedAt(offset, int(rv.Type().Size()), rv.Uint())
	case reflect.Float32:
		v.SetFloat32At(offset, float32(rv.Float()))
	case reflect.Float64:
		v.SetFloat64At(offset, rv.Float())
	default:
		panic(fmt.Sprintf("SetNumberAt: unhandled kind %s", rv.Kind()))
	}
}

func (v Elem) signedAt(offset, size int) int64 {
	switch size {
	case 8:
		return v.Int64At(offset)
	case 4:
		return int64(v.Int32At(offset))
	case 2:
		return int64(v.Int16At(offset))
	case 1:
		return int64(v.Int8At(offset))
	}
	panic(fmt.Sprintf("signedAt: unhandled int size %d", size))
}

func (v Elem) unsignedAt(offset, size int) uint64 {
	switch size {
	case 8:
		return v.Uint64At(offset)
	case 4:
		return uint64(v.Uint32At(offset))
	case 2:
		return uint64(v.Uint16At(offset))
	case 1:
		return uint64(v.Uint8At(offset))
	}
	panic(fmt.Sprintf("unsignedAt: unhandled int size %d", size))
}

func (v Elem) setUnsignedAt(offset, size int, x uint64) {
	switch size {
	case 8:
		v.SetUint64At(offset, x)
	case 4:
		v.SetUint32At(offset, uint32(x))
	case 2:
		v.SetUint16At(offset, uint16(x))
	case 1:
		v.SetUint8At(offset, uint8(x))
	default:
		panic(fmt.Sprintf("setUnsignedAt: unhandled int size %d", size))
	}
}
