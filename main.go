// Copyright (c) 2025 Visvasity LLC

// Command vecgen generates fixed-type wrappers over bytevec vectors.
//
// For example, given this snippet,
//
//   package shapes
//
//   type Meters int32
//
//   type Point struct {
//     X, Y  int32
//     Depth Meters
//   }
//
//   type Segment struct {
//     Ends   [2]Point
//     Weight float32
//   }
//
// running this command
//
//   vecgen -inpkg ./shapes -outdir ./shapevecs Segment
//
// will create files segment.vecgen.go and point.vecgen.go in ./shapevecs
// directory with the following interface:
//
//   //
//   // Point element view
//   //
//
//   type Point bytevec.Elem
//
//   const PointSize = 12
//
//   func (v Point) Elem() bytevec.Elem
//   func (v Point) IsZero() bool
//   func (v Point) SetZero()
//
//   func (v Point) X() int32
//   func (v Point) SetX(x int32)
//   func (v Point) Y() int32
//   func (v Point) SetY(x int32)
//   func (v Point) Depth() shapes.Meters
//   func (v Point) SetDepth(x shapes.Meters)
//
//   func (v Point) CopyTo(x *shapes.Point)
//   func (v Point) CopyFrom(x *shapes.Point)
//   func (v Point) String() string
//
//   //
//   // Segment element view and vector type
//   //
//
//   type Segment bytevec.Elem
//
//   const SegmentSize = 28
//
//   func (v Segment) EndsLen() int
//   func (v Segment) EndsItemAt(i int) Point
//   func (v Segment) Weight() float32
//   func (v Segment) SetWeight(x float32)
//   ...
//
//   type SegmentVector struct{ *bytevec.Vector }
//
//   func NewSegmentVector(capacity int) (*SegmentVector, error)
//
//   func (v *SegmentVector) PushBack(x *shapes.Segment) error
//   func (v *SegmentVector) At(i int) Segment
//   func (v *SegmentVector) AtUnchecked(i int) Segment
//   func (v *SegmentVector) Front() Segment
//   func (v *SegmentVector) Back() Segment
//   func (v *SegmentVector) Insert(i int, x *shapes.Segment) Segment
//   func (v *SegmentVector) Erase(i int) Segment
//   func (v *SegmentVector) EraseFunc(pred func(x Segment) bool) int
//   func (v *SegmentVector) All() iter.Seq2[int, Segment]
//   func (v *SegmentVector) SortFunc(cmp func(a, b Segment) int)
//   func (v *SegmentVector) FindFunc(cmp func(x Segment) int) (int, bool)
//
// Vector types are generated only for the types named on the command line.
// Views are generated for them and for every struct type they embed by
// value. Element layouts follow the memory layout of the input types on the
// target platform, so views agree byte for byte with typed.Vector values.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/types"
	"log"
	"maps"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/visvasity/bytevec/internal/layout"
)

const bytevecPkgPath = "github.com/visvasity/bytevec/bytevec"

var (
	inPkg  = flag.String("inpkg", ".", "package path/name for the type definitions")
	outPkg = flag.String("outpkg", "", "package name for the generated files")
	outDir = flag.String("outdir", "", "output directory for the generated files")
)

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of vecgen:\n")
	fmt.Fprintf(os.Stderr, "\tvecgen -inpkg '...' -outpkg '...' -outdir '...' types... # Must be a single package\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("vecgen: ")

	flag.Usage = Usage
	flag.Parse()
	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *outDir == "" {
		log.Fatalf("output directory must be set with -outdir flag")
	}

	pkg, err := loadPackage(*inPkg)
	if err != nil {
		log.Fatal(err)
	}
	if err := checkOutDir(pkg, *outDir); err != nil {
		log.Fatal(err)
	}

	if len(*outPkg) == 0 {
		s := filepath.Base(*outDir)
		outPkg = &s
	}

	g := newGenerator(pkg, *outPkg)
	for _, t := range flag.Args() {
		tn, err := g.lookup(t)
		if err != nil {
			log.Fatal(err)
		}
		if err := g.generate(tn); err != nil {
			log.Fatal(err)
		}
		// Generate vector types only for top-level data types.
		if err := g.generateVector(tn); err != nil {
			log.Fatal(err)
		}
	}

	for _, typ := range g.GetTypes() {
		src := g.GetSource(typ)

		outputName := filepath.Join(*outDir, strings.ToLower(typ)+".vecgen.go")
		if err := os.WriteFile(outputName, src, 0644); err != nil {
			log.Fatalf("writing output: %s", err)
		}
	}
}

func loadPackage(pkg string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, pkg)
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want exactly one", pkg, len(pkgs))
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %q has errors", pkg)
	}
	return pkgs[0], nil
}

// checkOutDir rejects writing the generated files into the input package,
// which would make the views clash with the input types.
func checkOutDir(pkg *packages.Package, dir string) error {
	if len(pkg.GoFiles) == 0 {
		return nil
	}
	in, err := filepath.Abs(filepath.Dir(pkg.GoFiles[0]))
	if err != nil {
		return err
	}
	out, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if in == out {
		return fmt.Errorf("output directory %q must not be the input package directory", dir)
	}
	return nil
}

// reservedNames are the method names used by the generated views.
var reservedNames = []string{"Elem", "IsZero", "SetZero", "CopyTo", "CopyFrom", "String"}

type Generator struct {
	checker *layout.Checker

	pkg     *packages.Package
	pkgName string

	bufferMap map[string]*bytes.Buffer

	// importsMap holds a mapping from a package path name to list of typename
	// keys in the bufferMap that needs to import the package name. For example,
	//
	//   importsMap["github.com/visvasity/units.v2"]["Point"] = "units"
	//
	// entry indicates an import statement like,
	//
	//   import units "github.com/visvasity/units.v2"
	//
	// in the generated file named "point.vecgen.go".
	importsMap map[string]map[string]string

	// viewMap holds the package qualified input type name for every generated
	// view type name.
	viewMap map[string]string
}

func newGenerator(pkg *packages.Package, pkgName string) *Generator {
	sizes := pkg.TypesSizes
	if sizes == nil {
		sizes = types.SizesFor(runtime.Compiler, runtime.GOARCH)
	}
	return &Generator{
		checker:    layout.New(sizes),
		pkg:        pkg,
		pkgName:    pkgName,
		bufferMap:  make(map[string]*bytes.Buffer),
		importsMap: make(map[string]map[string]string),
		viewMap:    make(map[string]string),
	}
}

func (g *Generator) vectorName(typeName string) string {
	return typeName + "Vector"
}

func (g *Generator) getBuffer(typeName string) *bytes.Buffer {
	if b, ok := g.bufferMap[typeName]; ok {
		return b
	}
	b := new(bytes.Buffer)
	g.bufferMap[typeName] = b
	return b
}

func (g *Generator) addImport(typeName string, importName, packagePath string) error {
	vmap, ok := g.importsMap[packagePath]
	if !ok {
		vmap = make(map[string]string)
		g.importsMap[packagePath] = vmap
	}

	x, ok := vmap[typeName]
	if !ok {
		vmap[typeName] = importName
		return nil
	}

	if x != importName {
		return fmt.Errorf("multiple different import names for package %q by type %q", packagePath, typeName)
	}
	return nil
}

// qualify imports the package of a named type into the file of typeName and
// returns the qualified type name.
func (g *Generator) qualify(typeName, name, pkgName, pkgPath string) (string, error) {
	if pkgPath == "" {
		return name, nil
	}
	importName := ""
	if path.Base(pkgPath) != pkgName {
		importName = pkgName
	}
	if err := g.addImport(typeName, importName, pkgPath); err != nil {
		return "", err
	}
	return pkgName + "." + name, nil
}

func (g *Generator) P(typeName string, v ...any) {
	buf := g.getBuffer(typeName)
	for _, x := range v {
		fmt.Fprint(buf, x)
	}
	fmt.Fprintln(buf)
}

func (g *Generator) GetTypes() []string {
	return slices.Sorted(maps.Keys(g.bufferMap))
}

func (g *Generator) GetSource(typeName string) []byte {
	buf := g.getSourceWithImports(typeName)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Should never happen, but can arise when developing this code.
		// The user can compile the output to see the error.
		log.Printf("warning: internal error: invalid Go generated: %s", err)
		log.Printf("warning: compile the package to analyze the error")
		return buf.Bytes()
	}
	return src
}

func (g *Generator) getImports(typeName string) [][2]string {
	var imports [][2]string
	for _, pkgPath := range slices.Sorted(maps.Keys(g.importsMap)) {
		imp, ok := g.importsMap[pkgPath][typeName]
		if !ok {
			continue
		}
		imports = append(imports, [2]string{imp, pkgPath})
	}
	return imports
}

func (g *Generator) getSourceWithImports(typeName string) *bytes.Buffer {
	buf := new(bytes.Buffer)

	fmt.Fprintln(buf, "// Code generated by github.com/visvasity/bytevec. DO NOT EDIT.")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "package", g.pkgName)
	fmt.Fprintln(buf)

	imports := g.getImports(typeName)
	if len(imports) != 0 {
		fmt.Fprintln(buf, "import (")
		for _, imp := range imports {
			if len(imp[0]) == 0 {
				fmt.Fprintf(buf, "%q\n", imp[1])
			} else {
				fmt.Fprintf(buf, "%s %q\n", imp[0], imp[1])
			}
		}
		fmt.Fprintln(buf, ")")
	}
	fmt.Fprintln(buf)

	buf.Write(g.getBuffer(typeName).Bytes())
	return buf
}

func (g *Generator) lookup(typeName string) (*types.TypeName, error) {
	object := g.pkg.Types.Scope().Lookup(typeName)
	if object == nil {
		return nil, fmt.Errorf("typename %q doesn't exist", typeName)
	}
	tn, ok := object.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("generator type %q is not a typename", typeName)
	}
	return tn, nil
}

// generate emits the view type for tn and for every struct type it holds.
func (g *Generator) generate(tn *types.TypeName) error {
	sdata, err := g.checker.Check(tn)
	if err != nil {
		return err
	}
	typeName := sdata.Name
	if key, ok := g.viewMap[typeName]; ok {
		if key != sdata.Key() {
			return fmt.Errorf("view type %q is needed for both %s and %s", typeName, key, sdata.Key())
		}
		return nil
	}
	g.viewMap[typeName] = sdata.Key()

	for _, fdata := range sdata.Fields {
		if slices.Contains(reservedNames, fdata.Name) {
			return fmt.Errorf("struct type %s: field name %q clashes with a generated method", sdata.Key(), fdata.Name)
		}
	}

	// Generate code for all dependent struct types.
	for _, fdata := range sdata.Fields {
		if fdata.Kind == "struct" || fdata.ElemKind == "struct" {
			if err := g.generate(fdata.Named.Obj); err != nil {
				return err
			}
		}
	}

	if err := g.generateViewType(sdata); err != nil {
		return err
	}
	for _, fdata := range sdata.Fields {
		switch {
		case fdata.Kind == "struct":
			g.generateStructMethods(sdata, fdata)
		case fdata.Kind == "array" && fdata.ElemKind == "struct":
			if err := g.generateStructArrayMethods(sdata, fdata); err != nil {
				return err
			}
		case fdata.Kind == "array":
			if err := g.generateBasicArrayMethods(sdata, fdata); err != nil {
				return err
			}
		default:
			if err := g.generateBasicMethods(sdata, fdata); err != nil {
				return err
			}
		}
	}
	if err := g.generateCopyMethods(sdata); err != nil {
		return err
	}
	return g.generatePrintMethod(sdata)
}

func (g *Generator) sourceTypeName(sdata *layout.Struct) (string, error) {
	return g.qualify(sdata.Name, sdata.Name, sdata.PkgName, sdata.PkgPath)
}

// fieldTypeName returns the Go type of a basic field or array element and
// whether it needs a conversion to and from the basic type.
func (g *Generator) fieldTypeName(sdata *layout.Struct, fdata *layout.Field) (string, bool, error) {
	if fdata.Named == nil {
		return fdata.Basic.Name, false, nil
	}
	n := fdata.Named
	name, err := g.qualify(sdata.Name, n.Name, n.PkgName, n.PkgPath)
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func (g *Generator) generateViewType(sdata *layout.Struct) error {
	typeName := sdata.Name

	if err := g.addImport(typeName, "", bytevecPkgPath); err != nil {
		return err
	}
	srcName, err := g.sourceTypeName(sdata)
	if err != nil {
		return err
	}

	g.P(typeName)
	g.P(typeName, "// ", typeName, " is a view over the bytes of one ", srcName, " value.")
	g.P(typeName, "type ", typeName, " bytevec.Elem")
	g.P(typeName)
	g.P(typeName, "// ", typeName, "Size is the size of ", srcName, " in bytes.")
	g.P(typeName, "const ", typeName, "Size = ", sdata.Size)
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// Elem returns access to the underlying byte slice.")
	g.P(typeName, "func (v ", typeName, ") Elem() bytevec.Elem {")
	g.P(typeName, "  return bytevec.Elem(v)")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", typeName, ") IsZero() bool {")
	g.P(typeName, "  return bytevec.IsZero(v[:", typeName, "Size])")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", typeName, ") SetZero() {")
	g.P(typeName, "  bytevec.SetZero(v[:", typeName, "Size])")
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

// accessors returns the getter expression and the setter statement for a
// basic field or array element at offset. Named numeric types are read and
// written with the generic bytevec number accessors.
func accessors(fdata *layout.Field, ftype string, convert bool, offset string) (get, set string) {
	b := fdata.Basic
	switch {
	case convert && b.Name != "bool":
		get = fmt.Sprint("bytevec.NumberAt[", ftype, "](v.Elem(), ", offset, ")")
		set = fmt.Sprint("bytevec.SetNumberAt(v.Elem(), ", offset, ", x)")
	case convert:
		get = fmt.Sprint(ftype, "(v.Elem().", b.Getter, "(", offset, "))")
		set = fmt.Sprint("v.Elem().", b.Setter, "(", offset, ", ", b.Name, "(x))")
	default:
		get = fmt.Sprint("v.Elem().", b.Getter, "(", offset, ")")
		set = fmt.Sprint("v.Elem().", b.Setter, "(", offset, ", x)")
	}
	return get, set
}

func (g *Generator) generateBasicMethods(sdata *layout.Struct, fdata *layout.Field) error {
	typeName := sdata.Name
	ftype, convert, err := g.fieldTypeName(sdata, fdata)
	if err != nil {
		return err
	}

	get, set := accessors(fdata, ftype, convert, fmt.Sprint(fdata.Offset))

	g.P(typeName)
	g.P(typeName, "func (v ", typeName, ") ", fdata.Name, "() ", ftype, " {")
	g.P(typeName, "  return ", get)
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", typeName, ") Set", fdata.Name, "(x ", ftype, ") {")
	g.P(typeName, "  ", set)
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

func (g *Generator) generateStructMethods(sdata *layout.Struct, fdata *layout.Field) {
	typeName := sdata.Name
	end := fdata.Offset + fdata.Size

	g.P(typeName)
	g.P(typeName, "func (v ", typeName, ") ", fdata.Name, "() ", fdata.Named.Name, " {")
	g.P(typeName, "  return ", fdata.Named.Name, "(v[", fdata.Offset, ":", end, ":", end, "])")
	g.P(typeName, "}")
	g.P(typeName)
}

func (g *Generator) generateArrayLenMethod(sdata *layout.Struct, fdata *layout.Field) error {
	typeName := sdata.Name

	if err := g.addImport(typeName, "", "fmt"); err != nil {
		return err
	}

	g.P(typeName)
	g.P(typeName, "func (v ", typeName, ") ", fdata.Name, "Len() int {")
	g.P(typeName, "  return ", fdata.Length)
	g.P(typeName, "}")
	g.P(typeName)
	return nil
}

func (g *Generator) generateBasicArrayMethods(sdata *layout.Struct, fdata *layout.Field) error {
	typeName := sdata.Name
	if err := g.generateArrayLenMethod(sdata, fdata); err != nil {
		return err
	}
	etype, convert, err := g.fieldTypeName(sdata, fdata)
	if err != nil {
		return err
	}

	get, set := accessors(fdata, etype, convert, fmt.Sprint(fdata.Offset, "+i*", fdata.ElemSize))

	g.P(typeName)
	g.P(typeName, "func (v ", typeName, ") ", fdata.Name, "ItemAt(i int) ", etype, " {")
	g.P(typeName, "  if i < 0 || i >= ", fdata.Length, " {")
	g.P(typeName, `    panic(fmt.Sprintf("array index %d is out of range [0:%d]", i, `, fdata.Length, `))`)
	g.P(typeName, "  }")
	g.P(typeName, "  return ", get)
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", typeName, ") Set", fdata.Name, "ItemAt(i int, x ", etype, ") {")
	g.P(typeName, "  if i < 0 || i >= ", fdata.Length, " {")
	g.P(typeName, `    panic(fmt.Sprintf("array index %d is out of range [0:%d]", i, `, fdata.Length, `))`)
	g.P(typeName, "  }")
	g.P(typeName, "  ", set)
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", typeName, ") ", fdata.Name, "() (xs [", fdata.Length, "]", etype, ") {")
	g.P(typeName, "  for i := range xs {")
	g.P(typeName, "    xs[i] = v.", fdata.Name, "ItemAt(i)")
	g.P(typeName, "  }")
	g.P(typeName, "  return")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", typeName, ") Set", fdata.Name, "(xs [", fdata.Length, "]", etype, ") {")
	g.P(typeName, "  for i := range xs {")
	g.P(typeName, "    v.Set", fdata.Name, "ItemAt(i, xs[i])")
	g.P(typeName, "  }")
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

func (g *Generator) generateStructArrayMethods(sdata *layout.Struct, fdata *layout.Field) error {
	typeName := sdata.Name
	if err := g.generateArrayLenMethod(sdata, fdata); err != nil {
		return err
	}
	etype := fdata.Named.Name

	g.P(typeName)
	g.P(typeName, "func (v ", typeName, ") ", fdata.Name, "ItemAt(i int) ", etype, " {")
	g.P(typeName, "  if i < 0 || i >= ", fdata.Length, " {")
	g.P(typeName, `    panic(fmt.Sprintf("array index %d is out of range [0:%d]", i, `, fdata.Length, `))`)
	g.P(typeName, "  }")
	g.P(typeName, "  off := ", fdata.Offset, " + i*", fdata.ElemSize)
	g.P(typeName, "  return ", etype, "(v[off : off+", fdata.ElemSize, " : off+", fdata.ElemSize, "])")
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

func (g *Generator) generateCopyMethods(sdata *layout.Struct) error {
	typeName := sdata.Name
	srcName, err := g.sourceTypeName(sdata)
	if err != nil {
		return err
	}

	g.P(typeName)
	g.P(typeName, "// CopyTo stores the fields of v into x.")
	g.P(typeName, "func (v ", typeName, ") CopyTo(x *", srcName, ") {")
	for _, fdata := range sdata.Fields {
		switch {
		case fdata.Kind == "struct":
			g.P(typeName, "  v.", fdata.Name, "().CopyTo(&x.", fdata.Name, ")")
		case fdata.Kind == "array" && fdata.ElemKind == "struct":
			g.P(typeName, "  for i := range x.", fdata.Name, " {")
			g.P(typeName, "    v.", fdata.Name, "ItemAt(i).CopyTo(&x.", fdata.Name, "[i])")
			g.P(typeName, "  }")
		default:
			g.P(typeName, "  x.", fdata.Name, " = v.", fdata.Name, "()")
		}
	}
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// CopyFrom stores the fields of x into v. Padding bytes are not modified.")
	g.P(typeName, "func (v ", typeName, ") CopyFrom(x *", srcName, ") {")
	for _, fdata := range sdata.Fields {
		switch {
		case fdata.Kind == "struct":
			g.P(typeName, "  v.", fdata.Name, "().CopyFrom(&x.", fdata.Name, ")")
		case fdata.Kind == "array" && fdata.ElemKind == "struct":
			g.P(typeName, "  for i := range x.", fdata.Name, " {")
			g.P(typeName, "    v.", fdata.Name, "ItemAt(i).CopyFrom(&x.", fdata.Name, "[i])")
			g.P(typeName, "  }")
		default:
			g.P(typeName, "  v.Set", fdata.Name, "(x.", fdata.Name, ")")
		}
	}
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

func (g *Generator) generatePrintMethod(sdata *layout.Struct) error {
	typeName := sdata.Name

	if err := g.addImport(typeName, "", "strings"); err != nil {
		return err
	}
	if err := g.addImport(typeName, "", "fmt"); err != nil {
		return err
	}

	g.P(typeName)
	g.P(typeName, "func (v ", typeName, ") String() string {")
	g.P(typeName, "  var sb strings.Builder")
	for i, fdata := range sdata.Fields {
		sep := " "
		if i == 0 {
			sep = ""
		}
		switch {
		case fdata.Kind == "struct":
			g.P(typeName, `  fmt.Fprintf(&sb, "`, sep, fdata.Name, `={%v}", v.`, fdata.Name, `())`)
		case fdata.Kind == "array" && fdata.ElemKind == "struct":
			g.P(typeName, `  fmt.Fprintf(&sb, "`, sep, fdata.Name, `=[%d]{", v.`, fdata.Name, `Len())`)
			g.P(typeName, `  for i := 0; i < v.`, fdata.Name, `Len(); i++ {`)
			g.P(typeName, `    if i != 0 {`)
			g.P(typeName, `      sb.WriteString(" ")`)
			g.P(typeName, `    }`)
			g.P(typeName, `    fmt.Fprintf(&sb, "{%v}", v.`, fdata.Name, `ItemAt(i))`)
			g.P(typeName, `  }`)
			g.P(typeName, `  sb.WriteString("}")`)
		case fdata.Kind == "array" && fdata.Basic.Name == "uint8" && fdata.Named == nil:
			g.P(typeName, `  fmt.Fprintf(&sb, "`, sep, fdata.Name, `=[%d]{%x}", v.`, fdata.Name, `Len(), v.`, fdata.Name, `())`)
		default:
			g.P(typeName, `  fmt.Fprintf(&sb, "`, sep, fdata.Name, `=%v", v.`, fdata.Name, `())`)
		}
	}
	g.P(typeName, "  return sb.String()")
	g.P(typeName, "}")
	g.P(typeName)
	return nil
}

// generateVector emits the vector type for the top-level type tn, whose view
// must have been generated already.
func (g *Generator) generateVector(tn *types.TypeName) error {
	sdata, err := g.checker.Check(tn)
	if err != nil {
		return err
	}
	typeName := sdata.Name
	vectorName := g.vectorName(typeName)

	if err := g.addImport(typeName, "", "iter"); err != nil {
		return err
	}
	srcName, err := g.sourceTypeName(sdata)
	if err != nil {
		return err
	}

	g.P(typeName)
	g.P(typeName, "// ", vectorName, " is a growable array of ", srcName, " values.")
	g.P(typeName, "type ", vectorName, " struct {")
	g.P(typeName, "  *bytevec.Vector")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// New", vectorName, " creates an empty vector with room for at least capacity elements.")
	g.P(typeName, "func New", vectorName, "(capacity int) (*", vectorName, ", error) {")
	g.P(typeName, "  v, err := bytevec.New(capacity, ", typeName, "Size)")
	g.P(typeName, "  if err != nil {")
	g.P(typeName, "    return nil, err")
	g.P(typeName, "  }")
	g.P(typeName, "  return &", vectorName, "{v}, nil")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v *", vectorName, ") PushBack(x *", srcName, ") error {")
	g.P(typeName, "  e := make(", typeName, ", ", typeName, "Size)")
	g.P(typeName, "  e.CopyFrom(x)")
	g.P(typeName, "  return v.Vector.PushBack(e)")
	g.P(typeName, "}")
	g.P(typeName)

	for _, m := range []string{"Front", "Back"} {
		g.P(typeName)
		g.P(typeName, "func (v *", vectorName, ") ", m, "() ", typeName, " {")
		g.P(typeName, "  return ", typeName, "(v.Vector.", m, "())")
		g.P(typeName, "}")
		g.P(typeName)
	}

	for _, m := range []string{"At", "AtUnchecked", "Erase"} {
		g.P(typeName)
		g.P(typeName, "func (v *", vectorName, ") ", m, "(i int) ", typeName, " {")
		g.P(typeName, "  return ", typeName, "(v.Vector.", m, "(i))")
		g.P(typeName, "}")
		g.P(typeName)
	}

	g.P(typeName)
	g.P(typeName, "func (v *", vectorName, ") Insert(i int, x *", srcName, ") ", typeName, " {")
	g.P(typeName, "  e := make(", typeName, ", ", typeName, "Size)")
	g.P(typeName, "  e.CopyFrom(x)")
	g.P(typeName, "  return ", typeName, "(v.Vector.Insert(i, e))")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v *", vectorName, ") EraseFunc(pred func(x ", typeName, ") bool) int {")
	g.P(typeName, "  return v.Vector.EraseIf(func(e bytevec.Elem) bool { return pred(", typeName, "(e)) })")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v *", vectorName, ") All() iter.Seq2[int, ", typeName, "] {")
	g.P(typeName, "  return func(yield func(int, ", typeName, ") bool) {")
	g.P(typeName, "    for i, e := range v.Vector.All() {")
	g.P(typeName, "      if !yield(i, ", typeName, "(e)) {")
	g.P(typeName, "        return")
	g.P(typeName, "      }")
	g.P(typeName, "    }")
	g.P(typeName, "  }")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v *", vectorName, ") SortFunc(cmp func(a, b ", typeName, ") int) {")
	g.P(typeName, "  v.Vector.SortFunc(func(a, b bytevec.Elem) int { return cmp(", typeName, "(a), ", typeName, "(b)) })")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v *", vectorName, ") FindFunc(cmp func(x ", typeName, ") int) (int, bool) {")
	g.P(typeName, "  return v.Vector.FindFunc(func(e bytevec.Elem) int { return cmp(", typeName, "(e)) })")
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}
