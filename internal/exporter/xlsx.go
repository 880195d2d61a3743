package exporter

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

const recordsSheet = "Tareas"

// RecordsXLSX renders the record set as a single-sheet workbook with the
// same columns as the CSV export.
func RecordsXLSX(records []model.TaskRecord) ([]byte, error) {
	wb := excelize.NewFile()
	defer wb.Close()

	defaultSheet := wb.GetSheetName(wb.GetActiveSheetIndex())
	index, err := wb.NewSheet(recordsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	wb.SetActiveSheet(index)
	if defaultSheet != recordsSheet {
		_ = wb.DeleteSheet(defaultSheet)
	}

	header := toRow(recordColumns())
	if err := wb.SetSheetRow(recordsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := toRow(recordRow(rec))
		if err := wb.SetSheetRow(recordsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write record %q: %w", rec.Name, err)
		}
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func toRow(values []string) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
