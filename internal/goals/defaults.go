package goals

import "github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"

func defaultObjectives() map[model.ObjectiveKey]*model.Objective {
	return map[model.ObjectiveKey]*model.Objective{
		model.ObjectiveOperationalEfficiency: {
			Key:    model.ObjectiveOperationalEfficiency,
			Name:   string(model.CategoryOperationalEfficiency),
			Unit:   "procesos",
			Target: 20,
		},
		model.ObjectiveDataReliability: {
			Key:    model.ObjectiveDataReliability,
			Name:   string(model.CategoryDataReliability),
			Unit:   "procesos",
			Target: 5,
		},
		model.ObjectiveERPExcellence: {
			Key:    model.ObjectiveERPExcellence,
			Name:   string(model.CategoryERPExcellence),
			Unit:   "mejoras",
			Target: 10,
		},
		model.ObjectiveIntegration: {
			Key:    model.ObjectiveIntegration,
			Name:   string(model.CategoryIntegration),
			Unit:   "integraciones",
			Target: 5,
		},
		model.ObjectiveInfoSecurity: {
			Key:       model.ObjectiveInfoSecurity,
			Name:      string(model.CategoryInfoSecurity),
			Unit:      "%",
			Target:    80,
			IsPercent: true,
		},
	}
}

// DefaultMilestones seeds the editable milestone table.
func DefaultMilestones() []model.Milestone {
	return []model.Milestone{
		{Objective: string(model.CategoryERPExcellence), Title: "Cierre módulo de compras",
			Date: "2026-03-31", Owner: "Jose Tellez", ProgressPct: 40, Comment: "En desarrollo"},
		{Objective: string(model.CategoryOperationalEfficiency), Title: "Automatización proceso nómina",
			Date: "2026-03-31", Owner: "Lizeth Castro", ProgressPct: 60, Comment: "En pruebas"},
		{Objective: string(model.CategoryInfoSecurity), Title: "Implementación MDM corporativo",
			Date: "2026-06-30", Owner: "Viviana Gallego", ProgressPct: 20, Comment: "Por iniciar"},
		{Objective: string(model.CategoryDataReliability), Title: "Tablero de calidad de datos",
			Date: "2026-06-30", Owner: "Diego Barahona", ProgressPct: 50, Comment: "En análisis"},
		{Objective: string(model.CategoryIntegration), Title: "API hub empresarial",
			Date: "2026-09-30", Owner: "Jorge Villarraga", ProgressPct: 10, Comment: "Por definir"},
	}
}

// DefaultDeliverables seeds the editable deliverables table.
func DefaultDeliverables() []model.Deliverable {
	return []model.Deliverable{
		{Objective: string(model.CategoryERPExcellence), Title: "Documento config. módulo compras",
			Owner: "Jose Tellez", DueDate: "2026-03-31", Priority: "Alta", Status: "En curso", ProgressPct: 60},
		{Objective: string(model.CategoryERPExcellence), Title: "Manual usuario cierre contable",
			Owner: "Jose Tellez", DueDate: "2026-04-30", Priority: "Media", Status: "Pendiente"},
		{Objective: string(model.CategoryOperationalEfficiency), Title: "Flujo automatizado de nómina",
			Owner: "Lizeth Castro", DueDate: "2026-03-31", Priority: "Alta", Status: "En curso", ProgressPct: 40},
		{Objective: string(model.CategoryOperationalEfficiency), Title: "Reporte KPI operativos mensual",
			Owner: "Lizeth Castro", DueDate: "2026-05-31", Priority: "Media", Status: "Pendiente"},
		{Objective: string(model.CategoryInfoSecurity), Title: "Política gestión MDM aprobada",
			Owner: "Viviana Gallego", DueDate: "2026-06-30", Priority: "Alta", Status: "Pendiente", ProgressPct: 10},
		{Objective: string(model.CategoryInfoSecurity), Title: "Plan respuesta incidentes v2",
			Owner: "Viviana Gallego", DueDate: "2026-08-31", Priority: "Media", Status: "Pendiente"},
		{Objective: string(model.CategoryDataReliability), Title: "Diccionario de datos corporativo",
			Owner: "Diego Barahona", DueDate: "2026-04-30", Priority: "Alta", Status: "En curso", ProgressPct: 35},
		{Objective: string(model.CategoryDataReliability), Title: "Dashboard calidad de datos v1",
			Owner: "Diego Barahona", DueDate: "2026-06-30", Priority: "Media", Status: "Pendiente"},
		{Objective: string(model.CategoryIntegration), Title: "Especificación API hub empresarial",
			Owner: "Jorge Villarraga", DueDate: "2026-09-30", Priority: "Alta", Status: "Pendiente", ProgressPct: 5},
	}
}
