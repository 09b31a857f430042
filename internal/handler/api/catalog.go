package api

import (
	"net/http"

	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary Get catalog
// @Description Active packages with their active sub-packages, and active add-ons
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Failure 500 {object} httperr.Response
// @Router /catalog [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	view, err := h.q.GetCatalog(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalogView(view))
}
