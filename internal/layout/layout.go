// Copyright (c) 2025 Visvasity LLC

// Package layout computes the byte layout of fixed-size struct types so that
// their values can be stored as raw bytes in a vector.
package layout

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Basic describes how a sized basic type is read from and written to an
// element view.
type Basic struct {
	Name   string // Go type name, e.g. "int32"
	Getter string // bytevec.Elem method name, e.g. "Int32At"
	Setter string // bytevec.Elem method name, e.g. "SetInt32At"
}

var basicMap = map[types.BasicKind]Basic{
	types.Bool: {"bool", "BoolAt", "SetBoolAt"},

	types.Int8:  {"int8", "Int8At", "SetInt8At"},
	types.Int16: {"int16", "Int16At", "SetInt16At"},
	types.Int32: {"int32", "Int32At", "SetInt32At"},
	types.Int64: {"int64", "Int64At", "SetInt64At"},

	types.Uint8:  {"uint8", "Uint8At", "SetUint8At"},
	types.Uint16: {"uint16", "Uint16At", "SetUint16At"},
	types.Uint32: {"uint32", "Uint32At", "SetUint32At"},
	types.Uint64: {"uint64", "Uint64At", "SetUint64At"},

	types.Float32: {"float32", "Float32At", "SetFloat32At"},
	types.Float64: {"float64", "Float64At", "SetFloat64At"},
}

// Named identifies a named type used by a field.
type Named struct {
	Name    string
	PkgPath string
	PkgName string

	Obj *types.TypeName
}

// Field describes one struct field.
type Field struct {
	Index int
	Name  string
	Kind  string // One of [basic|struct|array]

	Offset int64
	Size   int64

	// Basic is set for basic fields and for arrays of basic elements.
	Basic *Basic

	// Named is set when the field or the array element has a named type.
	Named *Named

	// Length and ElemSize are set for arrays only.
	Length   int64
	ElemSize int64
	ElemKind string // One of [basic|struct]
}

// Struct describes the layout of a named struct type.
type Struct struct {
	Name    string
	PkgPath string
	PkgName string

	Size   int64
	Fields []*Field
}

// Key returns the package qualified name of the struct.
func (s *Struct) Key() string {
	return s.PkgPath + "." + s.Name
}

// Checker validates struct types and computes their layouts. Results are
// memoized per type.
type Checker struct {
	sizes types.Sizes

	failedTypes   typeutil.Map // map[types.Type]error
	checkedTypes  typeutil.Map // map[types.Type]*Struct
	checkingTypes typeutil.Map // map[types.Type]bool
}

// New returns a checker that computes offsets with the given sizes, which
// must match the target platform for the layout to agree with the in-memory
// representation of the type.
func New(sizes types.Sizes) *Checker {
	return &Checker{sizes: sizes}
}

func typenameKey(tn *types.TypeName) string {
	if pkg := tn.Pkg(); pkg != nil {
		return pkg.Path() + "." + tn.Name()
	}
	return tn.Name()
}

func namedOf(tn *types.TypeName) *Named {
	n := &Named{Name: tn.Name(), Obj: tn}
	if pkg := tn.Pkg(); pkg != nil {
		n.PkgPath = pkg.Path()
		n.PkgName = pkg.Name()
	}
	return n
}

// Check validates the named struct type and returns its layout. Every nested
// struct type is checked as well.
func (c *Checker) Check(tn *types.TypeName) (*Struct, error) {
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("type %q is not a named type", typenameKey(tn))
	}
	if named.TypeParams().Len() != 0 {
		return nil, fmt.Errorf("generic type %q is not supported", typenameKey(tn))
	}
	stype, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("type %q is not a struct type", typenameKey(tn))
	}

	if v := c.checkedTypes.At(named); v != nil {
		return v.(*Struct), nil
	}
	if v := c.failedTypes.At(named); v != nil {
		return nil, v.(error)
	}
	if v := c.checkingTypes.At(named); v != nil {
		return nil, fmt.Errorf("struct type %q with recursive references is not supported", typenameKey(tn))
	}

	c.checkingTypes.Set(named, true)
	defer c.checkingTypes.Delete(named)

	sdata, err := c.collectFields(tn, stype)
	if err != nil {
		err = fmt.Errorf("struct type %q: %w", typenameKey(tn), err)
		c.failedTypes.Set(named, err)
		return nil, err
	}
	c.checkedTypes.Set(named, sdata)
	return sdata, nil
}

func (c *Checker) collectFields(tn *types.TypeName, stype *types.Struct) (*Struct, error) {
	sdata := &Struct{Name: tn.Name()}
	if pkg := tn.Pkg(); pkg != nil {
		sdata.PkgPath = pkg.Path()
		sdata.PkgName = pkg.Name()
	}

	var fs []*types.Var
	for i := 0; i < stype.NumFields(); i++ {
		f := stype.Field(i)
		if f.Anonymous() {
			return nil, fmt.Errorf("embedded field %q is not supported", f.Name())
		}
		if f.Name() == "_" {
			return nil, fmt.Errorf("blank field at index %d is not supported", i)
		}
		fdata := &Field{
			Index: i,
			Name:  f.Name(),
			Size:  c.sizes.Sizeof(f.Type()),
		}
		if err := c.collectField(f, fdata); err != nil {
			return nil, err
		}
		fs = append(fs, f)
		sdata.Fields = append(sdata.Fields, fdata)
	}

	for i, offset := range c.sizes.Offsetsof(fs) {
		sdata.Fields[i].Offset = offset
	}
	sdata.Size = c.sizes.Sizeof(stype)
	return sdata, nil
}

func (c *Checker) collectField(f *types.Var, fdata *Field) error {
	ftype := f.Type()
	switch x := ftype.Underlying().(type) {
	case *types.Basic:
		b, ok := basicMap[x.Kind()]
		if !ok {
			return fmt.Errorf("field %q of type %v is not a sized basic type", f.Name(), ftype)
		}
		fdata.Kind = "basic"
		fdata.Basic = &b
		if tn := typeName(ftype); tn != nil {
			fdata.Named = namedOf(tn)
		}
		return nil

	case *types.Struct:
		tn := typeName(ftype)
		if tn == nil {
			return fmt.Errorf("field %q has an anonymous struct type", f.Name())
		}
		if _, err := c.Check(tn); err != nil {
			return fmt.Errorf("field %q: %w", f.Name(), err)
		}
		fdata.Kind = "struct"
		fdata.Named = namedOf(tn)
		return nil

	case *types.Array:
		if x.Len() == 0 {
			return fmt.Errorf("field %q is a zero sized array", f.Name())
		}
		fdata.Kind = "array"
		fdata.Length = x.Len()
		fdata.ElemSize = c.sizes.Sizeof(x.Elem())

		etype := x.Elem()
		switch e := etype.Underlying().(type) {
		case *types.Basic:
			b, ok := basicMap[e.Kind()]
			if !ok {
				return fmt.Errorf("array field %q element type %v is not a sized basic type", f.Name(), etype)
			}
			fdata.ElemKind = "basic"
			fdata.Basic = &b
			if tn := typeName(etype); tn != nil {
				fdata.Named = namedOf(tn)
			}
			return nil
		case *types.Struct:
			tn := typeName(etype)
			if tn == nil {
				return fmt.Errorf("array field %q has an anonymous struct element type", f.Name())
			}
			if _, err := c.Check(tn); err != nil {
				return fmt.Errorf("array field %q: %w", f.Name(), err)
			}
			fdata.ElemKind = "struct"
			fdata.Named = namedOf(tn)
			return nil
		}
		return fmt.Errorf("array field %q element type %v is not supported", f.Name(), etype)
	}
	return fmt.Errorf("field %q of type %v (underlying %T) is not supported", f.Name(), ftype, ftype.Underlying())
}

// typeName returns the type name of a named or alias type, or nil.
func typeName(t types.Type) *types.TypeName {
	switch x := types.Unalias(t).(type) {
	case *types.Named:
		return x.Obj()
	}
	return nil
}
