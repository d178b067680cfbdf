// cmd/nevgen/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

// This binary is a code-generation tool.
//
// It reads a JSON specification naming an element type and generates a named
// wrapper around nev.Vec with typed constructors, so API boundaries can speak
// *batch.Payments instead of *nev.Vec[examples.Payment].
//
// Key behaviors:
// - Reads spec JSON: package, typeName, elemType, optional imports
// - When the spec leaves package empty, detects it from the package clause of
//   a buildable Go file next to the output
// - Validates that a qualified elemType (pkg.Type) is covered by an import
//   usable under that qualifier
// - Writes output atomically (temp file + rename) to avoid partial writes

// ImportSpec models one Go import: optional alias and full import path.
type ImportSpec struct {
	Alias string `json:"alias"`
	Path  string `json:"path"`
}

// Spec is the full input schema consumed by the generator.
type Spec struct {
	// Package is the target package name. When empty it is detected from the
	// package clause of a Go file in the output directory.
	Package string `json:"package"`

	// TypeName is the exported name of the generated wrapper type.
	TypeName string `json:"typeName"`

	// ElemType is the Go type of the elements, possibly qualified
	// (examples.Payment) or decorated (*T, []T).
	ElemType string `json:"elemType"`

	// Imports lists packages the element type needs. The nev package and
	// iter are always imported.
	Imports []ImportSpec `json:"imports"`
}

// nevImportPath is the library import the generated code always needs.
const nevImportPath = "github.com/verlio/nonempty/nev"

// templateData is the input passed to the Go template.
type templateData struct {
	Spec    Spec
	NevPath string
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("nevgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to type.nev.json")
	outPath := flags.String("out", "", "output .gen.go file path")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: nevgen -spec <type.nev.json> -out <file.gen.go>")
		return 2
	}

	specBytes, err := os.ReadFile(*specPath)
	must(err)

	var spec Spec
	must(json.Unmarshal(specBytes, &spec))

	generatedFilePath := filepath.Clean(*outPath)
	packageDir := filepath.Dir(generatedFilePath)

	if strings.TrimSpace(spec.Package) == "" {
		detected, err := detectPackageName(packageDir)
		if err != nil {
			// User-actionable: the spec must name the package when the output
			// directory cannot reveal it.
			panic(err)
		}
		spec.Package = detected
	}

	validateSpec(&spec)

	var out strings.Builder
	must(genTemplate.Execute(&out, templateData{Spec: spec, NevPath: nevImportPath}))

	must(writeFileAtomic(generatedFilePath, []byte(out.String()), 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// validateSpec validates semantic correctness of the input specification.
func validateSpec(spec *Spec) {
	var missingFields []string

	requireNonEmpty := func(fieldName, value string) {
		if strings.TrimSpace(value) == "" {
			missingFields = append(missingFields, fieldName)
		}
	}

	requireNonEmpty("package", spec.Package)
	requireNonEmpty("typeName", spec.TypeName)
	requireNonEmpty("elemType", spec.ElemType)

	if len(missingFields) > 0 {
		panic(fmt.Errorf("spec missing required fields: %v", missingFields))
	}

	if !token.IsIdentifier(spec.Package) {
		panic(fmt.Errorf("package %q is not a valid Go identifier", spec.Package))
	}
	if !token.IsIdentifier(spec.TypeName) {
		panic(fmt.Errorf("typeName %q is not a valid Go identifier", spec.TypeName))
	}
	if !token.IsExported(spec.TypeName) {
		// The whole point of the wrapper is a name other packages can use.
		panic(fmt.Errorf("typeName %q must be exported", spec.TypeName))
	}

	seenPaths := make(map[string]struct{}, len(spec.Imports))
	seenIdents := make(map[string]struct{}, len(spec.Imports))
	for _, imp := range spec.Imports {
		if strings.TrimSpace(imp.Path) == "" {
			panic(fmt.Errorf("import with empty path; got: %+v", imp))
		}
		if _, ok := seenPaths[imp.Path]; ok {
			panic(fmt.Errorf("duplicate import path: %s", imp.Path))
		}
		seenPaths[imp.Path] = struct{}{}

		ident := importIdent(imp)
		if _, ok := seenIdents[ident]; ok {
			panic(fmt.Errorf("duplicate import identifier: %s", ident))
		}
		seenIdents[ident] = struct{}{}
	}

	if qual := qualifierOf(spec.ElemType); qual != "" && !hasUsableQualifier(spec.Imports, qual) {
		panic(fmt.Errorf(
			"elemType %q is qualified by %q, but no import in the spec is usable under that identifier",
			spec.ElemType, qual,
		))
	}
}

// qualifierOf extracts the package qualifier of a possibly decorated type,
// e.g. "*examples.Payment" -> "examples". It returns "" for unqualified
// types such as builtins.
func qualifierOf(elemType string) string {
	t := strings.TrimSpace(elemType)
	for {
		switch {
		case strings.HasPrefix(t, "*"):
			t = t[1:]
		case strings.HasPrefix(t, "[]"):
			t = t[2:]
		default:
			qual, _, found := strings.Cut(t, ".")
			if !found {
				return ""
			}
			return qual
		}
	}
}

// importIdent returns the identifier an import is usable under: its alias
// when present, otherwise the base of its path.
func importIdent(imp ImportSpec) string {
	if imp.Alias != "" {
		return imp.Alias
	}
	// Import paths always use forward slashes, even on Windows.
	return path.Base(strings.TrimSpace(imp.Path))
}

// hasUsableQualifier reports whether generated code can refer to qual.Type
// with the imports given in the spec.
func hasUsableQualifier(imports []ImportSpec, qual string) bool {
	for _, imp := range imports {
		if importIdent(imp) == qual {
			return true
		}
	}
	return false
}

// detectPackageName parses the package clause of the first buildable Go file
// in dir. Generated and test files are skipped, as are files that fail to
// parse.
func detectPackageName(dir string) (string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	fileSet := token.NewFileSet()

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}

		parsedFile, parseErr := parser.ParseFile(fileSet, filepath.Join(dir, fileName), nil, parser.PackageClauseOnly)
		if parseErr != nil || parsedFile == nil || parsedFile.Name == nil {
			continue
		}
		return parsedFile.Name.Name, nil
	}

	return "", fmt.Errorf("no buildable Go file with a package clause in %s", dir)
}

// genTemplate is the Go source template used to generate the wrapper code.
var genTemplate = template.Must(
	template.New("nevgen").Parse(`// Code generated by nevgen; DO NOT EDIT.

package {{.Spec.Package}}

import (
	"iter"

	"{{.NevPath}}"
{{- range .Spec.Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)

// {{.Spec.TypeName}} is a non-empty vector of {{.Spec.ElemType}} values.
type {{.Spec.TypeName}} struct {
	nev.Vec[{{.Spec.ElemType}}]
}

// New{{.Spec.TypeName}} returns a {{.Spec.TypeName}} holding first followed by rest, in order.
func New{{.Spec.TypeName}}(first {{.Spec.ElemType}}, rest ...{{.Spec.ElemType}}) *{{.Spec.TypeName}} {
	return &{{.Spec.TypeName}}{Vec: *nev.New(first, rest...)}
}

// {{.Spec.TypeName}}FromSlice returns a {{.Spec.TypeName}} backed by s, or nev.ErrEmpty
// when s holds no elements. The wrapper takes ownership of s.
func {{.Spec.TypeName}}FromSlice(s []{{.Spec.ElemType}}) (*{{.Spec.TypeName}}, error) {
	v, err := nev.FromSlice(s)
	if err != nil {
		return nil, err
	}
	return &{{.Spec.TypeName}}{Vec: *v}, nil
}

// Collect{{.Spec.TypeName}} assembles a {{.Spec.TypeName}} from seq, or returns
// nev.ErrEmpty when seq yields nothing.
func Collect{{.Spec.TypeName}}(seq iter.Seq[{{.Spec.ElemType}}]) (*{{.Spec.TypeName}}, error) {
	v, err := nev.FromSeq(seq)
	if err != nil {
		return nil, err
	}
	return &{{.Spec.TypeName}}{Vec: *v}, nil
}
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
