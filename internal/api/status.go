package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse describes whether a dataset is loaded and its shape.
type StatusResponse struct {
	Loaded        bool     `json:"loaded"`
	UploadID      string   `json:"uploadId,omitempty"`
	FileName      string   `json:"fileName,omitempty"`
	TotalRecords  int      `json:"totalRecords"`
	MissingFields []string `json:"missingFields,omitempty"`
	LoadedAt      string   `json:"loadedAt,omitempty"`
}

// GetStatus reports the current dataset state.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	ds, ok := h.datasets.Current()
	if !ok {
		c.JSON(http.StatusOK, StatusResponse{Loaded: false})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Loaded:        true,
		UploadID:      ds.UploadID,
		FileName:      ds.FileName,
		TotalRecords:  len(ds.Records),
		MissingFields: fieldNames(ds.Missing),
		LoadedAt:      ds.LoadedAt.Format("2006-01-02 15:04:05"),
	})
}
