package parser

import (
	"regexp"
	"strings"
)

var spaceRe = regexp.MustCompile(`\s+`)

// NormalizeHeader strips the noise Planner exports tend to carry in header
// cells: surrounding whitespace, embedded newlines and tabs.
func NormalizeHeader(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\t", " ")
	return spaceRe.ReplaceAllString(name, " ")
}

// ResolveColumns maps the table's header row onto the canonical schema.
// Per field: exact alias match wins, then a case-insensitive trimmed match.
// Unresolved fields are reported as missing, never fatal.
func ResolveColumns(headers []string) Resolution {
	res := Resolution{
		Columns: make(map[Field]int, len(fieldAliases)),
		Missing: []Field{},
	}

	normalized := make([]string, len(headers))
	lowered := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
		lowered[i] = strings.ToLower(normalized[i])
	}

	for _, fa := range fieldAliases {
		idx, ok := findColumn(fa, normalized, lowered)
		if !ok {
			res.Missing = append(res.Missing, fa.Field)
			continue
		}
		res.Columns[fa.Field] = idx
	}

	return res
}

func findColumn(fa fieldAlias, normalized, lowered []string) (int, bool) {
	candidates := append(append([]string{}, fa.Aliases...), string(fa.Field))

	for _, alias := range candidates {
		for i, h := range normalized {
			if h == alias {
				return i, true
			}
		}
	}
	for _, alias := range candidates {
		want := strings.ToLower(strings.TrimSpace(alias))
		for i, h := range lowered {
			if h == want {
				return i, true
			}
		}
	}
	return 0, false
}
