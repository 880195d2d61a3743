package report

import (
	"fmt"
	"strconv"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

const rowHeight = 6.0

func (b *builder) textColor(c palette) { b.pdf.SetTextColor(c.r, c.g, c.b) }
func (b *builder) fillColor(c palette) { b.pdf.SetFillColor(c.r, c.g, c.b) }
func (b *builder) drawColor(c palette) { b.pdf.SetDrawColor(c.r, c.g, c.b) }

func (b *builder) title(s string) {
	b.pdf.SetFont("Helvetica", "B", 16)
	b.textColor(colDark)
	b.pdf.CellFormat(contentWidth, 9, b.tr(s), "", 1, "L", false, 0, "")
}

func (b *builder) subtitle(s string) {
	b.pdf.SetFont("Helvetica", "", 9)
	b.textColor(colSlate)
	b.pdf.CellFormat(contentWidth, 6, b.tr(s), "", 1, "L", false, 0, "")
}

func (b *builder) divider() {
	b.drawColor(colBlue)
	b.pdf.SetLineWidth(0.6)
	y := b.pdf.GetY() + 2
	b.pdf.Line(17, y, 17+contentWidth, y)
	b.pdf.SetY(y + 3)
}

func (b *builder) sectionTitle(s string) {
	b.pdf.SetFont("Helvetica", "B", 12)
	b.textColor(colDark)
	b.pdf.CellFormat(contentWidth, 8, b.tr(s), "", 1, "L", false, 0, "")
	b.pdf.Ln(1)
}

// globalBlock draws the large cumulative compliance figure on the cover.
func (b *builder) globalBlock(globalPct float64) {
	pdf := b.pdf
	b.fillColor(colLight)
	b.drawColor(colBorder)
	pdf.SetLineWidth(0.2)
	y := pdf.GetY()
	pdf.Rect(17, y, contentWidth, 26, "FD")

	pdf.SetXY(17, y+4)
	pdf.SetFont("Helvetica", "", 9)
	b.textColor(colSlate)
	pdf.CellFormat(contentWidth, 5, b.tr("Cumplimiento Global Estratégico"), "", 1, "C", false, 0, "")
	pdf.SetX(17)
	pdf.SetFont("Helvetica", "B", 24)
	b.textColor(statusColor(model.StatusForPercent(globalPct)))
	pdf.CellFormat(contentWidth, 12, formatPct(globalPct), "", 1, "C", false, 0, "")
	pdf.SetY(y + 28)
}

func (b *builder) tableHeader(widths []float64, labels []string) {
	pdf := b.pdf
	pdf.SetFont("Helvetica", "B", 8)
	b.fillColor(colDark)
	b.textColor(colWhite)
	for i, w := range widths {
		last := 0
		if i == len(widths)-1 {
			last = 1
		}
		pdf.CellFormat(w, rowHeight, b.tr(labels[i]), "", last, "L", true, 0, "")
	}
}

func (b *builder) tableCell(w float64, s, align string, last bool, zebra bool) {
	ln := 0
	if last {
		ln = 1
	}
	b.pdf.CellFormat(w, rowHeight, b.tr(s), "B", ln, align, zebra, 0, "")
}

func (b *builder) beginRow(zebra bool) {
	b.pdf.SetFont("Helvetica", "", 8)
	b.textColor(colDark)
	b.drawColor(colBorder)
	b.pdf.SetLineWidth(0.15)
	if zebra {
		b.fillColor(colLight)
	}
}

// statusCell paints a small marker square followed by the status label.
func (b *builder) statusCell(w float64, status model.ObjectiveStatus, last bool, zebra bool) {
	pdf := b.pdf
	x, y := pdf.GetX(), pdf.GetY()
	if zebra {
		b.fillColor(colLight)
		pdf.Rect(x, y, w, rowHeight, "F")
	}
	b.fillColor(statusColor(status))
	pdf.Rect(x+1.5, y+1.8, 2.4, 2.4, "F")
	pdf.SetXY(x+5, y)
	b.textColor(colDark)
	ln := 0
	if last {
		ln = 1
	}
	pdf.CellFormat(w-5, rowHeight, b.tr(string(status)), "B", ln, "L", false, 0, "")
	if !last {
		pdf.SetXY(x+w, y)
	}
	b.drawColor(colBorder)
	pdf.Line(x, y+rowHeight, x+w, y+rowHeight)
	b.fillColor(colLight)
}

func (b *builder) objectiveSummaryTable(snap model.PortfolioSnapshot) {
	widths := []float64{76, 30, 30, 40}
	b.tableHeader(widths, []string{"Objetivo", "Meta", "% Cumplimiento", "Estado"})
	for i, obj := range snap.Objectives {
		zebra := i%2 == 1
		b.beginRow(zebra)
		b.tableCell(widths[0], clip(obj.Name, 48), "L", false, zebra)
		b.tableCell(widths[1], formatTarget(obj.Objective), "C", false, zebra)
		b.tableCell(widths[2], formatPct(obj.PercentComplete), "C", false, zebra)
		b.statusCell(widths[3], obj.Status, true, zebra)
	}
}

func (b *builder) objectiveDetailTable(snap model.PortfolioSnapshot) {
	widths := []float64{56, 20, 22, 25, 31, 22}
	b.tableHeader(widths, []string{"Objetivo", "Meta", "Avance", "% Cumpl.", "Estado", "Unidad"})
	for i, obj := range snap.Objectives {
		zebra := i%2 == 1
		b.beginRow(zebra)
		b.tableCell(widths[0], clip(obj.Name, 36), "L", false, zebra)
		b.tableCell(widths[1], strconv.Itoa(obj.Target), "C", false, zebra)
		b.tableCell(widths[2], strconv.Itoa(obj.Actual), "C", false, zebra)
		b.tableCell(widths[3], formatPct(obj.PercentComplete), "C", false, zebra)
		b.statusCell(widths[4], obj.Status, false, zebra)
		b.tableCell(widths[5], clip(obj.Unit, 14), "C", true, zebra)
	}
}

func (b *builder) milestonesTable(rows []model.Milestone) {
	widths := []float64{36, 48, 22, 32, 14, 24}
	b.tableHeader(widths, []string{"Objetivo", "Hito", "Fecha", "Responsable", "%", "Comentario"})
	for i, m := range rows {
		zebra := i%2 == 1
		b.beginRow(zebra)
		b.tableCell(widths[0], clip(m.Objective, 24), "L", false, zebra)
		b.tableCell(widths[1], clip(m.Title, 32), "L", false, zebra)
		b.tableCell(widths[2], m.Date, "C", false, zebra)
		b.tableCell(widths[3], clip(m.Owner, 20), "L", false, zebra)
		b.tableCell(widths[4], strconv.Itoa(m.ProgressPct), "C", false, zebra)
		b.tableCell(widths[5], clip(m.Comment, 16), "L", true, zebra)
	}
}

func (b *builder) deliverablesTable(rows []model.Deliverable) {
	widths := []float64{30, 48, 28, 22, 17, 19, 12}
	b.tableHeader(widths, []string{"Objetivo", "Entregable", "Responsable", "Fecha", "Prioridad", "Estado", "%"})
	for i, d := range rows {
		zebra := i%2 == 1
		b.beginRow(zebra)
		b.tableCell(widths[0], clip(d.Objective, 19), "L", false, zebra)
		b.tableCell(widths[1], clip(d.Title, 32), "L", false, zebra)
		b.tableCell(widths[2], clip(d.Owner, 18), "L", false, zebra)
		b.tableCell(widths[3], d.DueDate, "C", false, zebra)
		b.tableCell(widths[4], clip(d.Priority, 10), "C", false, zebra)
		b.tableCell(widths[5], clip(d.Status, 12), "C", false, zebra)
		b.tableCell(widths[6], strconv.Itoa(d.ProgressPct), "C", true, zebra)
	}
}

func (b *builder) kpiRow(k model.PortfolioKPIs) {
	pdf := b.pdf
	cards := []struct {
		label string
		value string
	}{
		{"Total Reqs.", strconv.Itoa(k.Total)},
		{"Completados", strconv.Itoa(k.Completed)},
		{"% Completado", formatPct(k.PctCompleted)},
		{"Lead Time Prom.", formatDays(k.LeadTimeAvg)},
		{"% Asignación", formatPct(k.AssignmentRatePct)},
	}
	const gap = 2.0
	w := (contentWidth - gap*float64(len(cards)-1)) / float64(len(cards))
	y := pdf.GetY()
	x := 17.0
	for _, c := range cards {
		b.fillColor(colLight)
		b.drawColor(colBorder)
		pdf.SetLineWidth(0.2)
		pdf.Rect(x, y, w, 18, "FD")
		pdf.SetXY(x, y+3)
		pdf.SetFont("Helvetica", "", 7)
		b.textColor(colSlate)
		pdf.CellFormat(w, 4, b.tr(c.label), "", 2, "C", false, 0, "")
		pdf.SetX(x)
		pdf.SetFont("Helvetica", "B", 12)
		b.textColor(colBlue)
		pdf.CellFormat(w, 7, c.value, "", 0, "C", false, 0, "")
		x += w + gap
	}
	pdf.SetY(y + 20)
}

func (b *builder) workloadTable(rows []model.WorkloadRow) {
	widths := []float64{86, 30, 30, 30}
	b.tableHeader(widths, []string{"Especialista", "Total", "Completados", "% Cumplimiento"})
	for i, r := range rows {
		zebra := i%2 == 1
		b.beginRow(zebra)
		b.tableCell(widths[0], clip(r.Assignee, 54), "L", false, zebra)
		b.tableCell(widths[1], strconv.Itoa(r.Total), "C", false, zebra)
		b.tableCell(widths[2], strconv.Itoa(r.Completed), "C", false, zebra)
		b.tableCell(widths[3], formatPct(r.CompliancePct), "C", true, zebra)
	}
}

func (b *builder) categoryTable(rows []model.CategoryCount) {
	widths := []float64{136, 40}
	b.tableHeader(widths, []string{"Categoría Estratégica", "Cantidad"})
	for i, r := range rows {
		zebra := i%2 == 1
		b.beginRow(zebra)
		b.tableCell(widths[0], clip(string(r.Category), 86), "L", false, zebra)
		b.tableCell(widths[1], strconv.Itoa(r.Count), "C", true, zebra)
	}
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func formatDays(v *float64) string {
	if v == nil {
		return "N/D"
	}
	return fmt.Sprintf("%.1f d", *v)
}

func formatTarget(obj model.Objective) string {
	if obj.IsPercent {
		return strconv.Itoa(obj.Target) + "%"
	}
	return strconv.Itoa(obj.Target)
}

// clip bounds cell text to n runes so fixed-width columns never overflow.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
