package naming

import (
	"strings"
	"unicode"
)

// Tokens splits an identifier on separators and case transitions, keeping acronyms together.
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLPayload" -> ["XML", "Payload"]
//   - "order_line-no" -> ["order", "line", "no"]
func Tokens(s string) []string {
	var (
		tokens []string
		cur    strings.Builder
	)

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
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

		cur.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports whether runes[i] opens a new token: a lower-to-upper transition, or the
// last capital of an acronym followed by a lowercase letter.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// Normalize folds an identifier for fuzzy comparison: "Order_ID", "orderId" and "OrderID"
// all become "orderid".
func Normalize(s string) string {
	return strings.ToLower(strings.Join(Tokens(s), ""))
}

// Snake converts an identifier to snake_case.
func Snake(s string) string {
	tokens := Tokens(s)
	for i := range tokens {
		tokens[i] = strings.ToLower(tokens[i])
	}

	return strings.Join(tokens, "_")
}
