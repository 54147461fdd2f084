package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopPkg = "contract-mapper/internal/analyze/testdata/shop"

func loadShop(t *testing.T) *TypeGraph {
	t.Helper()
	graph, err := NewAnalyzer().LoadPackages(context.Background(), ".", "./testdata/shop")
	require.NoError(t, err)
	require.NotNil(t, graph)
	return graph
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadShop(t)

	assert.Contains(t, graph.Packages, shopPkg)
	assert.Equal(t, []string{shopPkg}, graph.Order)

	order := TypeID{PkgPath: shopPkg, Name: "Order"}
	assert.Contains(t, graph.Types, order)
}

func TestAnalyzer_DeclarationOrder(t *testing.T) {
	graph := loadShop(t)

	names := make([]string, 0, len(graph.Packages[shopPkg].Types))
	for _, id := range graph.Packages[shopPkg].Types {
		names = append(names, id.Name)
	}

	assert.Equal(t, []string{"Product", "Customer", "Audit", "Order", "OrderItem", "OrderStatus"}, names)
}

func TestAnalyzer_StructFields(t *testing.T) {
	graph := loadShop(t)

	customer := graph.GetType(TypeID{PkgPath: shopPkg, Name: "Customer"})
	require.NotNil(t, customer)
	assert.Equal(t, TypeKindStruct, customer.Kind)
	assert.Equal(t, "Customer places orders.", customer.Doc)

	fieldNames := make(map[string]bool)
	for _, f := range customer.Fields {
		fieldNames[f.Name] = true
	}

	assert.True(t, fieldNames["Audit"], "embedded struct should be listed")
	assert.True(t, fieldNames["Email"])
	assert.True(t, fieldNames["Password"], "json-skipped fields are still analyzed")
	assert.False(t, fieldNames["internal"], "unexported fields are ignored")
}

func TestAnalyzer_FieldKinds(t *testing.T) {
	graph := loadShop(t)

	order := graph.GetType(TypeID{PkgPath: shopPkg, Name: "Order"})
	require.NotNil(t, order)

	kinds := make(map[string]TypeKind)
	for _, f := range order.Fields {
		kinds[f.Name] = f.Type.Kind
	}

	assert.Equal(t, TypeKindBasic, kinds["ID"])
	assert.Equal(t, TypeKindAlias, kinds["Status"])
	assert.Equal(t, TypeKindSlice, kinds["Items"])
	assert.Equal(t, TypeKindMap, kinds["Metadata"])
	assert.Equal(t, TypeKindExternal, kinds["OrderedAt"])
}

func TestAnalyzer_FieldDocsAndTags(t *testing.T) {
	graph := loadShop(t)

	product := graph.GetType(TypeID{PkgPath: shopPkg, Name: "Product"})
	require.NotNil(t, product)

	var price, description *FieldInfo
	for i := range product.Fields {
		switch product.Fields[i].Name {
		case "PriceCents":
			price = &product.Fields[i]
		case "Description":
			description = &product.Fields[i]
		}
	}

	require.NotNil(t, price)
	require.NotNil(t, description)
	assert.Equal(t, "Price in the lowest currency unit", price.Doc)
	assert.Equal(t, "price_cents", price.JSONName())
	assert.False(t, price.OmitEmpty())
	assert.True(t, description.OmitEmpty())
}

func TestAnalyzer_NoPatterns(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages(context.Background(), ".")
	assert.Error(t, err)
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "unknown", TypeKind(99).String())
}
