package match

import "slices"

// synonyms maps a canonical field name to names that mean the same thing.
// Lookups go both ways between a key and its alternates, not between two
// alternates.
var synonyms = map[string][]string{
	"id":         {"identifier", "key", "pk"},
	"email":      {"email_address", "mail"},
	"phone":      {"phone_number", "telephone"},
	"name":       {"full_name", "display_name"},
	"created_at": {"created_date", "creation_time", "date_created"},
}

// AreSynonyms reports whether a and b are listed as synonyms in either direction.
// Both names are expected to be normalized already.
func AreSynonyms(a, b string) bool {
	return slices.Contains(synonyms[a], b) || slices.Contains(synonyms[b], a)
}

// isQualifiedSynonym reports whether one name is an identifier behind a
// qualifying prefix and the other is a bare identifier, as in customer_id
// against id or pk.
func isQualifiedSynonym(a, b string) bool {
	return qualifies(a, b) || qualifies(b, a)
}

func qualifies(qualified, bare string) bool {
	tokens := TokenizeIdent(qualified)
	if len(tokens) < 2 {
		return false
	}

	return isIdentifier(tokens[len(tokens)-1]) && isIdentifier(bare)
}

func isIdentifier(name string) bool {
	return name == "id" || slices.Contains(synonyms["id"], name)
}
