package api

import (
	"net/http"

	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	q queries.ClientQueries
}

func NewClientHandler(q queries.ClientQueries) *ClientHandler {
	return &ClientHandler{q: q}
}

type clientEmailURI struct {
	Email string `uri:"email" binding:"required,email"`
}

// @Summary Find client by email
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param email path string true "Client email"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/clients/{email} [get]
func (h *ClientHandler) GetByEmail(c *gin.Context) {
	var uri clientEmailURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email", nil)
		return
	}

	view, err := h.q.GetByEmail(c.Request.Context(), uri.Email)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientView(view))
}
