// Copyright (c) 2025 Visvasity LLC

package vectors

import (
	"math/rand"
	"reflect"
)

// randomize fills every settable field reachable from input, which must be a
// pointer, with random values.
func randomize(r *rand.Rand, input any) {
	v := reflect.ValueOf(input)

	// Handle nil or invalid input
	if !v.IsValid() || v.Kind() == reflect.Ptr && v.IsNil() {
		return
	}

	// Dereference pointer if necessary
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if !v.CanSet() {
		return
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(r.Int63n(1000) - 500)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(r.Intn(1000)))

	case reflect.Float32, reflect.Float64:
		v.SetFloat(r.Float64() * 1000)

	case reflect.Bool:
		v.SetBool(r.Intn(2) == 1)

	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			randomize(r, v.Index(i).Addr().Interface())
		}

	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).CanSet() {
				randomize(r, v.Field(i).Addr().Interface())
			}
		}
	}
}
