package api

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/dataset"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/parser"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/service/excel"
)

// UploadResponse summarizes an ingested spreadsheet.
type UploadResponse struct {
	UploadID      string   `json:"uploadId"`
	FileName      string   `json:"fileName"`
	TotalRecords  int      `json:"totalRecords"`
	MissingFields []string `json:"missingFields,omitempty"`
	Cached        bool     `json:"cached"`
}

// maxUploadBytes bounds the accepted spreadsheet size.
const maxUploadBytes = 32 << 20

// Upload ingests a Planner xlsx export and makes it the current dataset.
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no se encontró el archivo en el formulario"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "el archivo excede el tamaño máximo permitido"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fue posible leer el archivo"})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fue posible leer el archivo"})
		return
	}

	// Normalization is pure, so identical bytes reuse the cached dataset.
	hash := dataset.ContentHash(raw)
	if ds, ok := h.datasets.Cached(hash); ok {
		h.datasets.SetCurrent(ds)
		c.JSON(http.StatusOK, UploadResponse{
			UploadID:      ds.UploadID,
			FileName:      ds.FileName,
			TotalRecords:  len(ds.Records),
			MissingFields: fieldNames(ds.Missing),
			Cached:        true,
		})
		return
	}

	p := excel.NewParser()
	if err := p.LoadFile(bytes.NewReader(raw)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "el archivo no es un libro de Excel válido"})
		return
	}
	defer p.Close()

	table, err := p.FirstSheetTable()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fue posible leer la primera hoja"})
		return
	}

	records, missing := parser.Normalize(table, time.Now())

	ds := &dataset.Dataset{
		UploadID: p.FileID(),
		FileName: fileHeader.Filename,
		Hash:     hash,
		Records:  records,
		Missing:  missing,
		LoadedAt: time.Now(),
	}
	h.datasets.SetCurrent(ds)

	c.JSON(http.StatusOK, UploadResponse{
		UploadID:      ds.UploadID,
		FileName:      ds.FileName,
		TotalRecords:  len(records),
		MissingFields: fieldNames(missing),
	})
}

func fieldNames(fields []parser.Field) []string {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return names
}
