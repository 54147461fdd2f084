// Package mapping holds mapping rules between two contracts, the mapping file
// that persists them, and the validator that checks a rule against both
// contracts.
//
// # Mapping file
//
//	version: "1"
//	source: crm-customers
//	target: warehouse-customers
//	# Pinned pairs, expanded into confirmed rules
//	121:
//	  customers.email: contacts.email
//	# Source fields that are intentionally left unmapped
//	ignore:
//	  - customers.internal_note
//	rules:
//	  - id: 5b0c...
//	    source: customers.phone
//	    target: contacts.telephone
//	    transformation: None
//	    confidence: 0.76
//	    status: suggested
//
// # Rule lifecycle
//
// Rules start as "suggested". Only a reviewer moves them to confirmed,
// modified, or rejected; nothing in this module changes status on its own.
//
// # Validation
//
// Validate does not care where a rule came from. Resolver output, rules from
// an external assistant, and hand-edited files all go through the same
// checks.
package mapping
