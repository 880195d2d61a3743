package excel_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/service/excel"
)

func buildWorkbook(t *testing.T, headers []string, rows [][]string) *bytes.Buffer {
	t.Helper()

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(wb.GetActiveSheetIndex())

	header := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		header = append(header, h)
	}
	if err := wb.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("SetSheetRow header failed: %v", err)
	}

	for i, row := range rows {
		cells := make([]interface{}, 0, len(row))
		for _, c := range row {
			cells = append(cells, c)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := wb.SetSheetRow(sheet, cell, &cells); err != nil {
			t.Fatalf("SetSheetRow %d failed: %v", i, err)
		}
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	return &buf
}

func TestFirstSheetTable(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t,
		[]string{"Nombre de la tarea", "Progreso"},
		[][]string{
			{"Cierre contable", "Completado"},
			{"Migración", "En curso"},
		},
	)

	p := excel.NewParser()
	if err := p.LoadFile(buf); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	defer p.Close()

	table, err := p.FirstSheetTable()
	if err != nil {
		t.Fatalf("FirstSheetTable failed: %v", err)
	}
	if len(table.Headers) != 2 || table.Headers[0] != "Nombre de la tarea" {
		t.Fatalf("headers=%v", table.Headers)
	}
	if len(table.Rows) != 2 || table.Rows[1][1] != "En curso" {
		t.Fatalf("rows=%v", table.Rows)
	}
}

func TestFirstSheetTableEmptySheet(t *testing.T) {
	t.Parallel()

	wb := excelize.NewFile()
	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	p := excel.NewParser()
	if err := p.LoadFile(&buf); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	defer p.Close()

	table, err := p.FirstSheetTable()
	if err != nil {
		t.Fatalf("FirstSheetTable failed: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Fatalf("rows=%v, want empty", table.Rows)
	}
}

func TestLoadFileRejectsGarbage(t *testing.T) {
	t.Parallel()

	p := excel.NewParser()
	if err := p.LoadFile(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Fatalf("expected error for corrupt input")
	}
}

func TestFileIDsAreUnique(t *testing.T) {
	t.Parallel()

	if excel.NewParser().FileID() == excel.NewParser().FileID() {
		t.Fatalf("file IDs must be unique per parser")
	}
}
