package analyze

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
	}
}

// LoadPackages loads the packages matching patterns, resolved relative to
// dir, and adds their exported types to the graph. An empty dir means the
// current directory.
func (a *Analyzer) LoadPackages(ctx context.Context, dir string, patterns ...string) (*TypeGraph, error) {
	if len(patterns) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one package pattern is required")
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode:    LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to load packages " + strings.Join(patterns, ", ")).
			WithCause(err)
	}

	var errs []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e.Error())
		}
	}
	if len(errs) > 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package errors: " + strings.Join(errs, "; "))
	}

	// Register every package first so cross-package references are not
	// mistaken for external types.
	for _, pkg := range pkgs {
		if _, ok := a.graph.Packages[pkg.PkgPath]; ok {
			continue
		}
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{Path: pkg.PkgPath, Name: pkg.Name}
		a.graph.Order = append(a.graph.Order, pkg.PkgPath)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
		log.Ctx(ctx).Debug().
			Str("package", pkg.PkgPath).
			Int("types", len(a.graph.Packages[pkg.PkgPath].Types)).
			Msg("package analyzed")
	}

	return a.graph, nil
}

// processPackage walks the type declarations of pkg in source order.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := a.graph.Packages[pkg.PkgPath]

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || !ts.Name.IsExported() {
					continue
				}

				typeName, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok || typeName.IsAlias() {
					continue
				}

				typeID := TypeID{PkgPath: pkg.PkgPath, Name: ts.Name.Name}
				if _, seen := a.graph.Types[typeID]; seen {
					continue
				}

				info := a.analyzeType(typeName.Type())
				info.ID = typeID
				info.Doc = docText(ts.Doc, gd, len(gd.Specs))

				if st, ok := ts.Type.(*ast.StructType); ok {
					docs := fieldDocs(st)
					for i := range info.Fields {
						info.Fields[i].Doc = docs[info.Fields[i].Name]
					}
				}

				a.graph.Types[typeID] = info
				pkgInfo.Types = append(pkgInfo.Types, typeID)
			}
		}
	}
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{GoType: t}

	// Pre-cache so recursive types terminate.
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)
	case *types.Alias:
		resolved := a.analyzeType(types.Unalias(tt))
		*info = *resolved
	case *types.Basic:
		info.Kind = TypeKindBasic
	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())
	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())
	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.analyzeType(tt.Elem())
	case *types.Map:
		info.Kind = TypeKindMap
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)
	default:
		// Interfaces, channels and functions have no contract shape.
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	pkgPath := ""
	if obj.Pkg() != nil {
		pkgPath = obj.Pkg().Path()
	}

	info.ID = TypeID{PkgPath: pkgPath, Name: obj.Name()}

	if a.isExternalPackage(pkgPath) {
		info.Kind = TypeKindExternal
		return
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)
	default:
		// e.g. type OrderStatus string
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)
	}
}

// isExternalPackage returns true if the package is not in the loaded set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// analyzeStructFields extracts exported fields from a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		})
	}
}

// docText prefers the spec's own doc and falls back to the declaration's
// doc for single-spec declarations.
func docText(specDoc *ast.CommentGroup, gd *ast.GenDecl, specs int) string {
	if specDoc == nil && specs == 1 {
		specDoc = gd.Doc
	}

	return strings.TrimSpace(specDoc.Text())
}

func fieldDocs(st *ast.StructType) map[string]string {
	docs := make(map[string]string)
	if st.Fields == nil {
		return docs
	}

	for _, f := range st.Fields.List {
		group := f.Doc
		if group == nil {
			group = f.Comment
		}

		text := strings.TrimSpace(group.Text())
		if text == "" {
			continue
		}

		for _, name := range f.Names {
			docs[name.Name] = text
		}
	}

	return docs
}
