package analyze

import (
	"context"
	"fmt"
	"go/types"
	"path"
	"strconv"
	"strings"
	"unicode"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"contract-mapper/internal/contract"
)

const contractTag = "contract"

// Generator derives contracts from Go packages.
type Generator struct {
	// Dir is the directory package patterns are resolved from.
	Dir string
}

// Generate loads the packages matching patterns and builds a contract with
// one model per exported struct. An empty id uses the last element of the
// first package path.
func (g Generator) Generate(ctx context.Context, id string, patterns ...string) (*contract.Contract, error) {
	graph, err := NewAnalyzer().LoadPackages(ctx, g.Dir, patterns...)
	if err != nil {
		return nil, err
	}

	return BuildContract(graph, id)
}

// BuildContract converts the structs of graph into a contract. Packages are
// taken in load order and types in declaration order.
func BuildContract(graph *TypeGraph, id string) (*contract.Contract, error) {
	if len(graph.Order) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no packages loaded")
	}

	if id == "" {
		id = SnakeCase(path.Base(graph.Order[0]))
	}

	c := &contract.Contract{
		ID:    id,
		Title: id,
	}

	multi := len(graph.Order) > 1

	for _, pkgPath := range graph.Order {
		pkg := graph.Packages[pkgPath]

		for _, typeID := range pkg.Types {
			info := graph.GetType(typeID)
			if info == nil || info.Kind != TypeKindStruct {
				continue
			}

			name := SnakeCase(typeID.Name)
			if multi {
				name = SnakeCase(pkg.Name) + "_" + name
			}

			fields, err := modelFields(info, map[*TypeInfo]bool{info: true})
			if err != nil {
				return nil, fmt.Errorf("%s: %w", typeID, err)
			}

			c.Models = append(c.Models, contract.Model{
				Name:        name,
				Description: info.Doc,
				Fields:      fields,
			})
		}
	}

	if len(c.Models) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no exported structs found in " + strings.Join(graph.Order, ", "))
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// modelFields maps the serialized fields of a struct. Embedded structs
// without a json name are flattened, as encoding/json does.
func modelFields(info *TypeInfo, visiting map[*TypeInfo]bool) ([]contract.Field, error) {
	var fields []contract.Field

	for i := range info.Fields {
		fi := &info.Fields[i]
		if fi.Skipped() {
			continue
		}

		if fi.Embedded && fi.JSONName() == "" {
			if inner := structOf(fi.Type); inner != nil && !visiting[inner] {
				visiting[inner] = true
				embedded, err := modelFields(inner, visiting)
				delete(visiting, inner)
				if err != nil {
					return nil, err
				}
				fields = append(fields, embedded...)
				continue
			}
		}

		field, err := contractField(fi)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return fields, nil
}

func contractField(fi *FieldInfo) (contract.Field, error) {
	fieldType, optional := fieldType(fi.Type)

	f := contract.Field{
		Name:        fi.JSONName(),
		Type:        fieldType,
		Description: fi.Doc,
		Required:    !optional && !fi.OmitEmpty(),
	}
	if f.Name == "" {
		f.Name = SnakeCase(fi.Name)
	}

	gormTag := fi.GetTag("gorm")
	if strings.Contains(gormTag, "primaryKey") || strings.Contains(gormTag, "uniqueIndex") {
		f.Unique = true
	}

	if err := applyContractTag(&f, fi.GetTag(contractTag)); err != nil {
		return contract.Field{}, fmt.Errorf("field %s: %w", fi.Name, err)
	}

	return f, nil
}

// applyContractTag reads the comma-separated options of the contract tag.
func applyContractTag(f *contract.Field, tag string) error {
	if tag == "" {
		return nil
	}

	for _, opt := range strings.Split(tag, ",") {
		key, value, _ := strings.Cut(strings.TrimSpace(opt), "=")

		switch key {
		case "":
		case "pii":
			f.PII = true
		case "required":
			f.Required = true
		case "optional":
			f.Required = false
		case "unique":
			f.Unique = true
		case "format":
			f.Format = value
		case "pattern":
			f.Pattern = value
		case "classification":
			f.Classification = contract.Classification(value)
		case "maxLength":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("maxLength %q: %w", value, err)
			}
			f.MaxLength = &n
		case "type":
			t, err := contract.ParseFieldType(value)
			if err != nil {
				return err
			}
			f.Type = t
		default:
			return fmt.Errorf("unknown contract tag option %q", key)
		}
	}

	return nil
}

// fieldType maps a Go type to a contract type. Pointers are optional.
func fieldType(t *TypeInfo) (contract.FieldType, bool) {
	switch t.Kind {
	case TypeKindPointer:
		ft, _ := fieldType(t.ElemType)
		return ft, true
	case TypeKindSlice, TypeKindArray:
		if t.ElemType != nil && t.ElemType.Kind == TypeKindBasic && isByte(t.ElemType) {
			return contract.TypeString, false
		}
		return contract.TypeArray, false
	case TypeKindAlias:
		if t.Underlying != nil {
			return fieldType(t.Underlying)
		}
	case TypeKindBasic:
		return basicType(t), false
	case TypeKindExternal:
		return externalType(t.ID), false
	case TypeKindStruct, TypeKindMap:
		return contract.TypeObject, false
	}

	return contract.TypeObject, false
}

func basicType(t *TypeInfo) contract.FieldType {
	b, ok := t.GoType.Underlying().(*types.Basic)
	if !ok {
		return contract.TypeObject
	}

	info := b.Info()
	switch {
	case info&types.IsBoolean != 0:
		return contract.TypeBoolean
	case info&types.IsInteger != 0:
		return contract.TypeInteger
	case info&types.IsFloat != 0:
		return contract.TypeNumber
	case info&types.IsString != 0:
		return contract.TypeString
	default:
		return contract.TypeObject
	}
}

func isByte(t *TypeInfo) bool {
	b, ok := t.GoType.(*types.Basic)
	return ok && b.Kind() == types.Byte
}

// externalType maps well-known library types.
func externalType(id TypeID) contract.FieldType {
	switch {
	case id.PkgPath == "time" && id.Name == "Time":
		return contract.TypeTimestamp
	case id.PkgPath == "time" && id.Name == "Duration":
		return contract.TypeInteger
	case strings.Contains(strings.ToLower(id.Name), "decimal"):
		return contract.TypeDecimal
	case id.Name == "UUID" || id.Name == "NullString":
		return contract.TypeString
	case id.Name == "NullTime":
		return contract.TypeTimestamp
	default:
		return contract.TypeObject
	}
}

// structOf returns the struct behind t, following one pointer.
func structOf(t *TypeInfo) *TypeInfo {
	if t.Kind == TypeKindPointer {
		t = t.ElemType
	}

	if t != nil && t.Kind == TypeKindStruct {
		return t
	}

	return nil
}

// SnakeCase converts a Go identifier to snake_case, keeping acronyms
// together: CustomerID -> customer_id, HTTPServer -> http_server.
func SnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			acronymEnd := i > 0 && unicode.IsUpper(runes[i-1]) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || acronymEnd {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}

		if r == '-' || r == ' ' || r == '.' {
			b.WriteByte('_')
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
