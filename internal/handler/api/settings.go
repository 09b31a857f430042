package api

import (
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	cmds commands.SettingsCommands
	q    queries.SettingsQueries
}

func NewSettingsHandler(cmds commands.SettingsCommands, q queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, q: q}
}

// @Summary Get loyalty settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.LoyaltySettingsResponse
// @Router /admin/settings/loyalty [get]
func (h *SettingsHandler) GetLoyalty(c *gin.Context) {
	cfg, err := h.q.GetLoyalty(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoyaltyConfig(cfg))
}

// @Summary Update loyalty settings
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateLoyaltySettingsRequest true "Loyalty settings"
// @Success 200 {object} resdto.LoyaltySettingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/settings/loyalty [put]
func (h *SettingsHandler) UpdateLoyalty(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateLoyaltySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	cfg, err := h.cmds.UpdateLoyalty(c.Request.Context(), req, actorID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoyaltyConfig(cfg))
}
