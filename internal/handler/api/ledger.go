package api

import (
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	q queries.LedgerQueries
}

func NewLedgerHandler(q queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{q: q}
}

// @Summary List ledger transactions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.TransactionListResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/transactions [get]
func (h *LedgerHandler) List(c *gin.Context) {
	var query reqdto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	items, next, err := h.q.List(c.Request.Context(), &queries.Cursor{After: query.Cursor}, query.Limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionList(items, next))
}
