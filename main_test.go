// Copyright (c) 2025 Visvasity LLC

package main

import (
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inputPkgPath = "github.com/visvasity/bytevec/input"

func newTestGenerator(t *testing.T, typeNames ...string) *Generator {
	t.Helper()
	pkg, err := loadPackage(inputPkgPath)
	require.NoError(t, err)

	g := newGenerator(pkg, "vectors")
	for _, name := range typeNames {
		tn, err := g.lookup(name)
		require.NoError(t, err)
		require.NoError(t, g.generate(tn))
		require.NoError(t, g.generateVector(tn))
	}
	return g
}

// parseSource parses generated source and returns the method names declared
// per receiver type, the top-level function names and the import paths.
func parseSource(t *testing.T, src []byte) (methods map[string][]string, funcs, imports []string) {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "generated.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source:\n%s", src)

	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		require.NoError(t, err)
		imports = append(imports, p)
	}

	methods = make(map[string][]string)
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if fn.Recv == nil {
			funcs = append(funcs, fn.Name.Name)
			continue
		}
		rtype := fn.Recv.List[0].Type
		if star, ok := rtype.(*ast.StarExpr); ok {
			rtype = star.X
		}
		recv := rtype.(*ast.Ident).Name
		methods[recv] = append(methods[recv], fn.Name.Name)
	}
	return methods, funcs, imports
}

func TestGeneratePoint(t *testing.T) {
	g := newTestGenerator(t, "Point")
	assert.Equal(t, []string{"Point"}, g.GetTypes())

	src := g.GetSource("Point")
	methods, funcs, imports := parseSource(t, src)
	// Reading the source does not consume it.
	assert.Equal(t, string(src), string(g.GetSource("Point")))

	wantView := []string{
		"Elem", "IsZero", "SetZero",
		"X", "SetX", "Y", "SetY", "Depth", "SetDepth",
		"CopyTo", "CopyFrom", "String",
	}
	if diff := cmp.Diff(wantView, methods["Point"]); diff != "" {
		t.Fatalf("unexpected view methods (-want +got):\n%s", diff)
	}
	wantVector := []string{
		"PushBack", "Front", "Back", "At", "AtUnchecked", "Erase",
		"Insert", "EraseFunc", "All", "SortFunc", "FindFunc",
	}
	if diff := cmp.Diff(wantVector, methods["PointVector"]); diff != "" {
		t.Fatalf("unexpected vector methods (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"NewPointVector"}, funcs)
	assert.ElementsMatch(t, []string{"fmt", "github.com/visvasity/bytevec/bytevec", inputPkgPath, "iter", "strings"}, imports)

	assert.Contains(t, string(src), "const PointSize = 12")
	assert.Contains(t, string(src), "return bytevec.NumberAt[input.Meters](v.Elem(), 8)")
	assert.Contains(t, string(src), "bytevec.SetNumberAt(v.Elem(), 8, x)")
}

func TestGenerateSample(t *testing.T) {
	g := newTestGenerator(t, "Sample")

	// Views of nested struct types are generated without a vector type.
	assert.Equal(t, []string{"Point", "Sample"}, g.GetTypes())
	methods, funcs, _ := parseSource(t, g.GetSource("Point"))
	assert.NotContains(t, methods, "PointVector")
	assert.Empty(t, funcs)

	src := g.GetSource("Sample")
	methods, funcs, _ = parseSource(t, src)
	assert.Equal(t, []string{"NewSampleVector"}, funcs)
	for _, name := range []string{
		"ID", "SetID", "Valid", "SetValid", "Flags", "SetFlags",
		"Weight", "SetWeight", "Score", "SetScore",
		"Origin",
		"CornersLen", "CornersItemAt",
		"TagsLen", "TagsItemAt", "SetTagsItemAt", "Tags", "SetTags",
		"DigestLen", "DigestItemAt", "SetDigestItemAt", "Digest", "SetDigest",
	} {
		assert.Contains(t, methods["Sample"], name)
	}
	assert.Contains(t, methods, "SampleVector")

	assert.Contains(t, string(src), "return Point(v[24:36:36])")
	assert.Contains(t, string(src), "off := 36 + i*12")
	assert.Contains(t, string(src), "return v.Elem().Uint16At(84 + i*2)")
	assert.Contains(t, string(src), "return bytevec.NumberAt[input.Flags](v.Elem(), 10)")
}

func TestGenerateRejects(t *testing.T) {
	pkg, err := loadPackage(inputPkgPath)
	require.NoError(t, err)
	g := newGenerator(pkg, "vectors")

	for _, name := range []string{"WithSlice", "WithString", "WithPointer", "WithInt", "WithEmbedded", "WithBadNested", "Meters"} {
		tn, err := g.lookup(name)
		require.NoError(t, err)
		assert.Error(t, g.generate(tn), name)
	}
	assert.Empty(t, g.GetTypes())

	_, err = g.lookup("Missing")
	assert.Error(t, err)
	_, err = g.lookup("VisibleFlag")
	assert.Error(t, err)
}

func TestGenerateIsIdempotent(t *testing.T) {
	g := newTestGenerator(t, "Sample")
	tn, err := g.lookup("Point")
	require.NoError(t, err)
	// Point already has a view, generating it again adds nothing.
	before := g.GetSource("Point")
	require.NoError(t, g.generate(tn))
	assert.Equal(t, before, g.GetSource("Point"))
}

func TestCheckOutDir(t *testing.T) {
	pkg, err := loadPackage(inputPkgPath)
	require.NoError(t, err)

	assert.Error(t, checkOutDir(pkg, filepath.Dir(pkg.GoFiles[0])))
	assert.NoError(t, checkOutDir(pkg, t.TempDir()))
}

// TestGeneratedFilesUpToDate checks the generated files under vectors/ against
// the current generator output.
func TestGeneratedFilesUpToDate(t *testing.T) {
	g := newTestGenerator(t, "Point", "Sample")
	for _, typ := range g.GetTypes() {
		want, err := os.ReadFile(filepath.Join("vectors", strings.ToLower(typ)+".vecgen.go"))
		require.NoError(t, err)
		want, err = format.Source(want)
		require.NoError(t, err)
		if diff := cmp.Diff(string(want), string(g.GetSource(typ))); diff != "" {
			t.Errorf("vectors/%s.vecgen.go is stale, run go generate ./vectors (-want +got):\n%s", strings.ToLower(typ), diff)
		}
	}
}
