package parser

import (
	"testing"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

func TestClassifyByPhrase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		want  model.Category
	}{
		{"Excelencia ERP", model.CategoryERPExcellence},
		{"EFICIENCIA OPERATIVA", model.CategoryOperationalEfficiency},
		{"Seguridad de la Información", model.CategoryInfoSecurity},
		{"seguridad informacion", model.CategoryInfoSecurity},
		{"Datos Confiables; Tesorería", model.CategoryDataReliability},
		{"Integración", model.CategoryIntegration},
		{"integracion", model.CategoryIntegration},
		{"Compras; Logística", model.CategoryUnclassified},
	}

	for _, tc := range cases {
		if got := Classify(tc.label); got != tc.want {
			t.Fatalf("Classify(%q)=%q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestClassifyByMarkerGlyph(t *testing.T) {
	t.Parallel()

	if got := Classify("🟦 Proceso interno"); got != model.CategoryOperationalEfficiency {
		t.Fatalf("Classify=%q, want %q", got, model.CategoryOperationalEfficiency)
	}
	if got := Classify("🟩 Reporte diario"); got != model.CategoryDataReliability {
		t.Fatalf("Classify=%q, want %q", got, model.CategoryDataReliability)
	}
}

func TestClassifyEmptyAndBlank(t *testing.T) {
	t.Parallel()

	if got := Classify(""); got != model.CategoryUnclassified {
		t.Fatalf("Classify(\"\")=%q, want Unclassified", got)
	}
	if got := Classify("   "); got != model.CategoryUnclassified {
		t.Fatalf("Classify(blank)=%q, want Unclassified", got)
	}
}

// A label carrying two markers is genuinely ambiguous in the source taxonomy.
// Declaration order is the tie-break: ERP (🟨) outranks efficiency (🟦).
func TestClassifyAmbiguousLabelUsesDeclarationOrder(t *testing.T) {
	t.Parallel()

	if got := Classify("🟦 Nómina; 🟨 ERP"); got != model.CategoryERPExcellence {
		t.Fatalf("Classify=%q, want %q", got, model.CategoryERPExcellence)
	}
}

func TestExtractBusinessAreas(t *testing.T) {
	t.Parallel()

	areas := ExtractBusinessAreas("🟦 Proceso interno; Eficiencia Operativa; Tesorería; x")
	want := []string{"Proceso interno", "Tesorería"}
	if len(areas) != len(want) {
		t.Fatalf("areas=%v, want %v", areas, want)
	}
	for i := range want {
		if areas[i] != want[i] {
			t.Fatalf("areas[%d]=%q, want %q", i, areas[i], want[i])
		}
	}
}

func TestExtractBusinessAreasEmpty(t *testing.T) {
	t.Parallel()

	if got := ExtractBusinessAreas(""); got != nil {
		t.Fatalf("areas=%v, want nil", got)
	}
	if got := ExtractBusinessAreas("🟨"); got != nil {
		t.Fatalf("bare marker areas=%v, want nil", got)
	}
}
