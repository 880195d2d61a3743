package parser

import (
	"regexp"
	"strings"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

// categoryPattern binds one strategic category to its label pattern. Each
// pattern matches either the canonical phrase (accent-tolerant) or the
// color marker glyph the PMO prefixes tags with in Planner.
type categoryPattern struct {
	Category model.Category
	Pattern  *regexp.Regexp
}

// strategicPatterns is evaluated in declaration order; the first match wins.
// That order is the documented tie-break for labels carrying more than one
// marker (see the ambiguity test in classifier_test.go).
var strategicPatterns = []categoryPattern{
	{model.CategoryERPExcellence, regexp.MustCompile(`excelencia\s+erp|🟨`)},
	{model.CategoryOperationalEfficiency, regexp.MustCompile(`eficiencia\s+operativa|🟦`)},
	{model.CategoryInfoSecurity, regexp.MustCompile(`seguridad\s+(?:de\s+la\s+)?informaci[oó]n`)},
	{model.CategoryDataReliability, regexp.MustCompile(`datos\s+confiables|🟩`)},
	{model.CategoryIntegration, regexp.MustCompile(`integraci[oó]n|🟥`)},
}

// markerGlyphRe strips a leading color marker from an individual tag.
var markerGlyphRe = regexp.MustCompile(`^[🟨🟦🟩🟥🔴⬛]\s*`)

// Classify resolves a raw label string to exactly one strategic category.
// Total over all inputs: empty, unmatched and multi-match labels all yield a
// single value, never an error.
func Classify(label string) model.Category {
	if strings.TrimSpace(label) == "" {
		return model.CategoryUnclassified
	}
	lowered := strings.ToLower(label)
	for _, cp := range strategicPatterns {
		if cp.Pattern.MatchString(lowered) {
			return cp.Category
		}
	}
	return model.CategoryUnclassified
}

// ExtractBusinessAreas splits a label field into its free-text business-area
// tags: every semicolon-separated segment that is not a strategic-category
// marker, with any leading glyph stripped. One-rune leftovers are noise from
// bare markers and are dropped.
func ExtractBusinessAreas(label string) []string {
	if strings.TrimSpace(label) == "" {
		return nil
	}

	var areas []string
	for _, seg := range strings.Split(label, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		// The marker glyph is stripped before the strategic check: a tag
		// like "🟦 Proceso interno" is a business area that happens to be
		// color-coded, not the strategic tag itself.
		clean := strings.TrimSpace(markerGlyphRe.ReplaceAllString(seg, ""))
		if len([]rune(clean)) < 2 {
			continue
		}
		if isStrategicTag(clean) {
			continue
		}
		areas = append(areas, clean)
	}
	return areas
}

func isStrategicTag(seg string) bool {
	lowered := strings.ToLower(seg)
	for _, cp := range strategicPatterns {
		if cp.Pattern.MatchString(lowered) {
			return true
		}
	}
	return false
}
