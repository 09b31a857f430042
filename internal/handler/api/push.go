package api

import (
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PushHandler struct {
	cmds      commands.PushCommands
	publicKey string
}

func NewPushHandler(cmds commands.PushCommands, vapidPublicKey string) *PushHandler {
	return &PushHandler{cmds: cmds, publicKey: vapidPublicKey}
}

// @Summary VAPID public key
// @Tags push
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /admin/push-subscriptions/key [get]
func (h *PushHandler) PublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"public_key": h.publicKey})
}

// @Summary Subscribe to push notifications
// @Tags push
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.PushSubscriptionRequest true "Browser subscription"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /admin/push-subscriptions [post]
func (h *PushHandler) Subscribe(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.PushSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	err := h.cmds.Subscribe(c.Request.Context(), userID, role.String(), commands.PushSubscriptionInput{
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	})
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove a push subscription
// @Tags push
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.DeletePushSubscriptionRequest true "Endpoint"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /admin/push-subscriptions [delete]
func (h *PushHandler) Unsubscribe(c *gin.Context) {
	var req reqdto.DeletePushSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	if err := h.cmds.Unsubscribe(c.Request.Context(), req.Endpoint); err != nil {
		if errs.Is(err, commands.ErrPushSubscriptionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Subscription not found", nil)
			return
		}
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
