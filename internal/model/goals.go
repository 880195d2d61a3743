package model

// ObjectiveKey identifies one of the five fixed strategic objectives.
type ObjectiveKey string

const (
	ObjectiveOperationalEfficiency ObjectiveKey = "eficiencia_operativa"
	ObjectiveDataReliability       ObjectiveKey = "datos_confiables"
	ObjectiveERPExcellence         ObjectiveKey = "excelencia_erp"
	ObjectiveIntegration           ObjectiveKey = "integracion"
	ObjectiveInfoSecurity          ObjectiveKey = "seguridad_informacion"
)

// ObjectiveKeys lists the objectives in report/display order.
func ObjectiveKeys() []ObjectiveKey {
	return []ObjectiveKey{
		ObjectiveOperationalEfficiency,
		ObjectiveDataReliability,
		ObjectiveERPExcellence,
		ObjectiveIntegration,
		ObjectiveInfoSecurity,
	}
}

// Objective holds the user-editable state of one strategic objective.
// For count-typed objectives Actual is an absolute count bounded by Target;
// for the information-security objective both Target and Actual are
// percentages (0-100).
type Objective struct {
	Key       ObjectiveKey `json:"key"`
	Name      string       `json:"name"`
	Unit      string       `json:"unit"`
	Target    int          `json:"target"`
	Actual    int          `json:"actual"`
	IsPercent bool         `json:"isPercent"`
}

// ObjectiveStatus is the traffic-light state of an objective.
type ObjectiveStatus string

const (
	StatusOnTarget ObjectiveStatus = "En meta"     // > 80%
	StatusTracking ObjectiveStatus = "Seguimiento" // 50-80%
	StatusAtRisk   ObjectiveStatus = "En riesgo"   // < 50%
)

// StatusForPercent maps a completion percentage to its traffic light.
func StatusForPercent(pct float64) ObjectiveStatus {
	switch {
	case pct > 80:
		return StatusOnTarget
	case pct >= 50:
		return StatusTracking
	default:
		return StatusAtRisk
	}
}

// ObjectiveResult is one objective plus its derived completion state.
type ObjectiveResult struct {
	Objective
	PercentComplete float64         `json:"percentComplete"`
	Status          ObjectiveStatus `json:"status"`
}

// PortfolioSnapshot blends the five objectives into one view.
type PortfolioSnapshot struct {
	Objectives    []ObjectiveResult `json:"objectives"`
	GlobalPercent float64           `json:"globalPercent"`
}

// Milestone is one row of the editable strategic-milestones table.
type Milestone struct {
	Objective   string `json:"objective"`
	Title       string `json:"title"`
	Date        string `json:"date"` // YYYY-MM-DD
	Owner       string `json:"owner"`
	ProgressPct int    `json:"progressPct"`
	Comment     string `json:"comment"`
}

// Deliverable is one row of the editable deliverables table.
type Deliverable struct {
	Objective   string `json:"objective"`
	Title       string `json:"title"`
	Owner       string `json:"owner"`
	DueDate     string `json:"dueDate"` // YYYY-MM-DD
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	ProgressPct int    `json:"progressPct"`
}
