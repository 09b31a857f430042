package api

import (
	"fmt"
	"net/http"

	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FileHandler struct {
	q queries.FileQueries
}

func NewFileHandler(q queries.FileQueries) *FileHandler {
	return &FileHandler{q: q}
}

// @Summary Download stored file
// @Description Serves an uploaded payment proof
// @Tags files
// @Produce octet-stream
// @Param id path string true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Router /files/{id} [get]
func (h *FileHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, queries.ErrFileNotFound, "File not found", nil)
		return
	}

	file, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrFileNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "File not found", nil)
			return
		}
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.FileName))
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
