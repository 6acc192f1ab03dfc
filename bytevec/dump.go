// Copyright (c) 2025 Visvasity LLC

package bytevec

import (
	"fmt"
	"io"
)

// Dump writes one "index:value" line per element to w, formatting each
// element with format.
func (v *Vector) Dump(w io.Writer, format func(Elem) string) error {
	v.mustLive()
	for i := 0; i < v.count; i++ {
		if _, err := fmt.Fprintf(w, "%d:%s\n", i, format(v.slot(i))); err != nil {
			return err
		}
	}
	return nil
}

// DumpUnchecked writes one "index: num:value" line for every slot up to Cap,
// including stale slots past Len.
func (v *Vector) DumpUnchecked(w io.Writer, format func(Elem) string) error {
	v.mustLive()
	for i := 0; i < v.capacity; i++ {
		if _, err := fmt.Fprintf(w, "%d: num:%s\n", i, format(v.slot(i))); err != nil {
			return err
		}
	}
	return nil
}

// Int32Formatter formats elements holding a single int32.
func Int32Formatter(e Elem) string {
	return fmt.Sprintf("%d", e.Int32At(0))
}
