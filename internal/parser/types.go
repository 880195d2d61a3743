package parser

// Field is a canonical column of the Planner export schema.
type Field string

const (
	FieldName      Field = "name"
	FieldStage     Field = "stage"
	FieldProgress  Field = "progress"
	FieldPriority  Field = "priority"
	FieldAssignee  Field = "assignee"
	FieldCreated   Field = "created"
	FieldStarted   Field = "started"
	FieldDue       Field = "due"
	FieldCompleted Field = "completed"
	FieldLate      Field = "late"
	FieldLabels    Field = "labels"
)

// fieldAlias binds a canonical field to its accepted header spellings, in
// preference order. The canonical field name itself is always accepted last,
// so a table produced by our own CSV export resolves cleanly.
type fieldAlias struct {
	Field   Field
	Aliases []string
}

// fieldAliases covers the header variants Planner emits depending on tenant
// language. Matching is exact first, then case/whitespace-insensitive.
var fieldAliases = []fieldAlias{
	{FieldName, []string{"Task Name", "Nombre de la tarea", "Nombre"}},
	{FieldStage, []string{"Bucket Name", "Nombre del depósito", "Depósito"}},
	{FieldProgress, []string{"Progress", "Progreso", "Estado"}},
	{FieldPriority, []string{"Priority", "Prioridad"}},
	{FieldAssignee, []string{"Assigned To", "Asignado a"}},
	{FieldCreated, []string{"Created Date", "Created", "Fecha de creación"}},
	{FieldStarted, []string{"Start Date", "Fecha de inicio"}},
	{FieldDue, []string{"Due Date", "Fecha de vencimiento"}},
	{FieldCompleted, []string{"Completion Date", "Completed Date", "Fecha de finalización"}},
	{FieldLate, []string{"Late", "Is Late", "Con retraso"}},
	{FieldLabels, []string{"Labels", "Tags", "Etiquetas"}},
}

// Fields lists the canonical schema in declaration order.
func Fields() []Field {
	out := make([]Field, 0, len(fieldAliases))
	for _, fa := range fieldAliases {
		out = append(out, fa.Field)
	}
	return out
}

// Table is a raw tabular import: one header row plus data rows, as returned
// by the spreadsheet reader. Rows may be ragged (trailing empty cells are
// dropped by excelize).
type Table struct {
	Headers []string
	Rows    [][]string
}

// Resolution is the outcome of mapping a table's headers onto the canonical
// schema. Missing fields do not abort ingestion; their values are empty for
// every row.
type Resolution struct {
	Columns map[Field]int
	Missing []Field
}

// Has reports whether the field was found in the source table.
func (r Resolution) Has(f Field) bool {
	_, ok := r.Columns[f]
	return ok
}
