// Package excel wraps the spreadsheet plumbing around the pure parsing
// pipeline: it loads an uploaded workbook and exposes its first sheet as a
// raw header/rows table.
package excel

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/parser"
)

// Parser loads one uploaded Planner export.
type Parser struct {
	file   *excelize.File
	fileID string
}

// NewParser creates a parser with a fresh upload identity.
func NewParser() *Parser {
	return &Parser{
		fileID: uuid.New().String(),
	}
}

// LoadFile opens the workbook from the uploaded bytes.
func (p *Parser) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	p.file = file
	return nil
}

// FileID returns the upload identity.
func (p *Parser) FileID() string {
	return p.fileID
}

// Close releases the underlying workbook.
func (p *Parser) Close() error {
	if p.file == nil {
		return nil
	}
	return p.file.Close()
}

// FirstSheetTable reads the first sheet into a raw table: row one is the
// header, everything below is data. Planner exports always carry the task
// list on the first sheet; any others are ignored.
func (p *Parser) FirstSheetTable() (parser.Table, error) {
	if p.file == nil {
		return parser.Table{}, errors.New("no file loaded")
	}

	sheets := p.file.GetSheetList()
	if len(sheets) == 0 {
		return parser.Table{}, errors.New("workbook has no sheets")
	}

	rows, err := p.file.GetRows(sheets[0])
	if err != nil {
		return parser.Table{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return parser.Table{Headers: []string{}, Rows: [][]string{}}, nil
	}

	return parser.Table{
		Headers: rows[0],
		Rows:    rows[1:],
	}, nil
}
