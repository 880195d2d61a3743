// Package report assembles the executive PDF: strategic snapshot, milestone
// and deliverable tables, and (when a dataset is loaded) the operational
// portfolio section. Generation is a pure, synchronous transform of already
// validated in-memory data.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

// OperationalData is the optional dataset-backed section input.
type OperationalData struct {
	KPIs       model.PortfolioKPIs
	Workload   []model.WorkloadRow
	Categories []model.CategoryCount
}

// Data is everything the assembler consumes. Optional pieces may be empty;
// their sections are omitted, never rendered blank.
type Data struct {
	Snapshot     model.PortfolioSnapshot
	Milestones   []model.Milestone
	Deliverables []model.Deliverable
	Operational  *OperationalData

	Title       string
	Author      string
	Period      string
	GeneratedAt time.Time
}

// FileName is the download name convention for a report generated at ts.
func FileName(ts time.Time) string {
	return fmt.Sprintf("Report_%s.pdf", ts.Format("20060102"))
}

type palette struct{ r, g, b int }

var (
	colBlue   = palette{29, 106, 245}
	colGreen  = palette{13, 160, 99}
	colRed    = palette{224, 48, 48}
	colYellow = palette{217, 119, 6}
	colDark   = palette{15, 28, 46}
	colSlate  = palette{100, 116, 139}
	colLight  = palette{244, 246, 251}
	colBorder = palette{226, 232, 240}
	colWhite  = palette{255, 255, 255}
)

func statusColor(status model.ObjectiveStatus) palette {
	switch status {
	case model.StatusOnTarget:
		return colGreen
	case model.StatusTracking:
		return colYellow
	default:
		return colRed
	}
}

// builder wraps the fpdf document with the report's drawing vocabulary.
type builder struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

const contentWidth = 176.0 // A4 minus 17mm margins

// Build renders the document. Deterministic given identical inputs except
// for the embedded generation date.
func Build(d Data) ([]byte, error) {
	if d.Title == "" {
		d.Title = "Informe TD 2026"
	}
	if d.GeneratedAt.IsZero() {
		d.GeneratedAt = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(17, 22, 17)
	pdf.SetAutoPageBreak(true, 18)
	pdf.SetTitle(fmt.Sprintf("%s - %s", d.Title, d.GeneratedAt.Format("02/01/2006")), true)
	pdf.SetAuthor(d.Author, true)
	pdf.SetCreationDate(d.GeneratedAt)
	pdf.SetModificationDate(d.GeneratedAt)
	pdf.AliasNbPages("")

	b := &builder{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetHeaderFuncMode(func() {
		b.pageHeader(d)
	}, true)
	pdf.SetFooterFunc(func() {
		b.pageFooter()
	})

	b.coverPage(d)
	b.detailPage(d)
	if d.Operational != nil {
		b.operationalPage(*d.Operational, d)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("report build failed: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report build failed: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *builder) pageHeader(d Data) {
	pdf := b.pdf
	pdf.SetY(8)
	pdf.SetFont("Helvetica", "B", 8)
	b.textColor(colSlate)
	pdf.CellFormat(contentWidth/2, 5, b.tr(d.Title), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentWidth/2, 5, d.GeneratedAt.Format("02/01/2006"), "", 1, "R", false, 0, "")
	b.drawColor(colBorder)
	pdf.SetLineWidth(0.2)
	pdf.Line(17, 14, 17+contentWidth, 14)
	pdf.SetY(22)
}

func (b *builder) pageFooter() {
	pdf := b.pdf
	pdf.SetY(-14)
	pdf.SetFont("Helvetica", "", 7)
	b.textColor(colSlate)
	pdf.CellFormat(0, 5, fmt.Sprintf("%d / {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
}

func (b *builder) coverPage(d Data) {
	pdf := b.pdf
	pdf.AddPage()

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "B", 10)
	b.textColor(colBlue)
	pdf.CellFormat(contentWidth, 6, b.tr("INFORME EJECUTIVO"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 26)
	b.textColor(colDark)
	pdf.CellFormat(contentWidth, 12, b.tr(d.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	b.textColor(colSlate)
	pdf.CellFormat(contentWidth, 8, b.tr("Indicadores Estratégicos & Control Operativo"), "", 1, "L", false, 0, "")
	b.divider()
	pdf.Ln(3)

	b.globalBlock(d.Snapshot.GlobalPercent)
	pdf.Ln(6)

	b.sectionTitle("Cumplimiento por Objetivo")
	b.objectiveSummaryTable(d.Snapshot)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 8)
	b.textColor(colSlate)
	meta := fmt.Sprintf("Fecha de generación: %s", d.GeneratedAt.Format("02/01/2006"))
	if d.Period != "" {
		meta += fmt.Sprintf("  ·  Periodo: %s", d.Period)
	}
	if d.Author != "" {
		meta += fmt.Sprintf("  ·  Responsable: %s", d.Author)
	}
	pdf.CellFormat(contentWidth, 5, b.tr(meta), "", 1, "L", false, 0, "")
}

func (b *builder) detailPage(d Data) {
	pdf := b.pdf
	pdf.AddPage()

	b.title("Indicadores Estratégicos")
	b.subtitle(fmt.Sprintf("Detalle de metas, avances y estado por objetivo · %s", d.GeneratedAt.Format("02/01/2006")))
	b.divider()

	b.sectionTitle("Resumen de Objetivos Estratégicos")
	b.objectiveDetailTable(d.Snapshot)
	pdf.Ln(5)

	if len(d.Milestones) > 0 {
		b.sectionTitle("Hitos Estratégicos")
		b.milestonesTable(d.Milestones)
		pdf.Ln(5)
	}

	if len(d.Deliverables) > 0 {
		b.sectionTitle("Entregables por Objetivo")
		b.deliverablesTable(d.Deliverables)
	}
}

func (b *builder) operationalPage(op OperationalData, d Data) {
	pdf := b.pdf
	pdf.AddPage()

	b.title("Control Operativo")
	b.subtitle(fmt.Sprintf("Indicadores de portafolio desde Microsoft Planner · %s", d.GeneratedAt.Format("02/01/2006")))
	b.divider()

	b.sectionTitle("KPIs Operativos del Portafolio")
	b.kpiRow(op.KPIs)
	pdf.Ln(5)

	if len(op.Workload) > 0 {
		b.sectionTitle("Distribución por Especialista (Top 10)")
		b.workloadTable(topByVolume(op.Workload, 10))
		pdf.Ln(5)
	}

	if len(op.Categories) > 0 {
		b.sectionTitle("Reqs. por Categoría Estratégica")
		b.categoryTable(op.Categories)
	}
}

// topByVolume re-sorts a copy of the workload by total count. The engine
// orders by active load; the report wants raw volume.
func topByVolume(rows []model.WorkloadRow, n int) []model.WorkloadRow {
	sorted := append([]model.WorkloadRow{}, rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Total != sorted[j].Total {
			return sorted[i].Total > sorted[j].Total
		}
		return sorted[i].Assignee < sorted[j].Assignee
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
