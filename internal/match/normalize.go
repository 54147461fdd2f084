package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"contract-mapper/internal/contract"
)

// NormalizeName reduces a dotted field path to the lowercased last segment
// that name matching works on.
func NormalizeName(path string) string {
	return lower(contract.LastSegment(path))
}

// DescriptionTokens splits free text into its set of lowercased whitespace
// tokens. The text is NFC normalized first so composed and decomposed
// spellings produce the same token.
func DescriptionTokens(s string) map[string]struct{} {
	fields := strings.Fields(lower(s))
	if len(fields) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}

	return set
}

// Jaccard returns |a ∩ b| / |a ∪ b|. Two empty sets score 0.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	shared := 0

	for tok := range a {
		if _, ok := b[tok]; ok {
			shared++
		}
	}

	union := len(a) + len(b) - shared

	return float64(shared) / float64(union)
}

// TokenizeIdent splits an identifier on separators and camelCase boundaries
// into lowercase tokens.
//   - "customer_id" -> ["customer", "id"]
//   - "createdAt"   -> ["created", "at"]
//   - "XMLPayload"  -> ["xml", "payload"]
func TokenizeIdent(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports a lower->upper transition or the end of an acronym.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func lower(s string) string {
	// cases.Caser keeps state, so one per call.
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}
