// Package contract holds data contract definitions: named models made of
// named, typed fields with constraint and sensitivity metadata.
//
// Contracts are loaded from YAML documents shaped like:
//
//	id: urn:contract:crm
//	info:
//	  title: CRM
//	  version: 1.2.0
//	  owner: sales-platform
//	models:
//	  customers:
//	    fields:
//	      email:
//	        type: string
//	        format: email
//	        pii: true
//	        classification: confidential
//
// Model and field order is preserved from the document. Fields are addressed
// by a dotted path "model.field" which is unique within a contract.
//
// Shape errors (unknown types, duplicate names) are reported when a contract
// is parsed or validated; the matching engine assumes well-formed contracts.
package contract
