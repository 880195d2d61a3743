package parser

import "testing"

func TestResolveColumnsExactSpanishHeaders(t *testing.T) {
	t.Parallel()

	headers := []string{
		"Nombre de la tarea", "Nombre del depósito", "Progreso", "Prioridad",
		"Asignado a", "Fecha de creación", "Fecha de inicio",
		"Fecha de vencimiento", "Fecha de finalización", "Con retraso", "Etiquetas",
	}

	res := ResolveColumns(headers)
	if len(res.Missing) != 0 {
		t.Fatalf("missing=%v, want none", res.Missing)
	}
	if got := res.Columns[FieldName]; got != 0 {
		t.Fatalf("name column=%d, want 0", got)
	}
	if got := res.Columns[FieldLabels]; got != 10 {
		t.Fatalf("labels column=%d, want 10", got)
	}
}

func TestResolveColumnsCaseAndWhitespaceInsensitive(t *testing.T) {
	t.Parallel()

	res := ResolveColumns([]string{"  task name ", "BUCKET NAME", "progress"})
	if !res.Has(FieldName) || !res.Has(FieldStage) || !res.Has(FieldProgress) {
		t.Fatalf("expected name/stage/progress resolved, got %v", res.Columns)
	}
}

func TestResolveColumnsExactMatchBeatsCaseInsensitive(t *testing.T) {
	t.Parallel()

	// Both headers resolve for progress case-insensitively; the exact alias
	// must win regardless of position.
	res := ResolveColumns([]string{"progreso", "Progress"})
	if got := res.Columns[FieldProgress]; got != 1 {
		t.Fatalf("progress column=%d, want 1 (exact alias)", got)
	}
}

func TestResolveColumnsReportsMissingFields(t *testing.T) {
	t.Parallel()

	res := ResolveColumns([]string{"Task Name", "Progress"})
	if res.Has(FieldLabels) {
		t.Fatalf("labels should be missing")
	}

	found := false
	for _, f := range res.Missing {
		if f == FieldLabels {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing=%v, want to contain %q", res.Missing, FieldLabels)
	}
}

func TestResolveColumnsAcceptsCanonicalNames(t *testing.T) {
	t.Parallel()

	// Headers written by our own CSV export are the canonical field names.
	headers := make([]string, 0)
	for _, f := range Fields() {
		headers = append(headers, string(f))
	}

	res := ResolveColumns(headers)
	if len(res.Missing) != 0 {
		t.Fatalf("missing=%v, want none", res.Missing)
	}
}

func TestNormalizeHeaderStripsNoise(t *testing.T) {
	t.Parallel()

	if got := NormalizeHeader(" Fecha \nde   creación\t"); got != "Fecha de creación" {
		t.Fatalf("NormalizeHeader=%q", got)
	}
}
