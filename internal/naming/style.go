package naming

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"

	"automapper/internal/common"
)

// Style is a column and table naming style.
type Style int

const (
	StyleVerbatim Style = iota // names are used as declared in Go
	StyleSnake                 // names are converted to snake_case
)

// String returns a human-readable representation of the Style.
func (s Style) String() string {
	switch s {
	case StyleVerbatim:
		return "verbatim"
	case StyleSnake:
		return "snake"
	default:
		return common.UnknownStr
	}
}

// ParseStyle parses "verbatim" or "snake". An empty string selects StyleVerbatim.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "verbatim":
		return StyleVerbatim, nil
	case "snake", "snake_case":
		return StyleSnake, nil
	default:
		return StyleVerbatim, fmt.Errorf("unknown naming style %q (want verbatim or snake)", s)
	}
}

// Apply formats an identifier in the style.
func (s Style) Apply(name string) string {
	if s == StyleSnake {
		return Snake(name)
	}

	return name
}

// Join formats the concatenation of parts, e.g. ("Customer", "ID") -> "CustomerID" or "customer_id".
func (s Style) Join(parts ...string) string {
	if s == StyleSnake {
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p != "" {
				out = append(out, Snake(p))
			}
		}

		return strings.Join(out, "_")
	}

	return strings.Join(parts, "")
}

var rules = ruleset()

func ruleset() *inflect.Ruleset {
	r := inflect.NewDefaultRuleset()
	for _, w := range []string{"ID", "URL", "UUID", "SKU", "API", "HTTP", "JSON", "SQL"} {
		r.AddAcronym(w)
	}

	return r
}

// Plural returns the plural form of the last word of name: "OrderLine" -> "OrderLines".
func Plural(name string) string {
	return rules.Pluralize(name)
}

// Singular returns the singular form of the last word of name.
func Singular(name string) string {
	return rules.Singularize(name)
}
