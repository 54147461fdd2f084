// Package analyze loads Go packages and derives data contracts from their
// exported structs.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build an
// in-memory type graph, then maps each struct to a contract model:
//   - TypeID: package import path + type name
//   - TypeInfo: kind (struct/basic/alias/pointer/slice/external) and doc comment
//   - FieldInfo: field name, type, tags, doc comment and embedding
//
// Field names come from the json tag, falling back to the snake_case Go
// name. The contract tag adds what Go types cannot express:
//
//	Email string `json:"email" contract:"pii,format=email,classification=confidential"`
package analyze
