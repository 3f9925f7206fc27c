package handler

import (
	"ramp-gateway/internal/adapter/http/dto"
	"ramp-gateway/internal/adapter/http/middleware"
	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"
	"ramp-gateway/pkg/apperror"
	"ramp-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler exposes the transaction state machine.
type OrderHandler struct {
	orderSvc ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc ports.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// Create handles POST /order/create.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	userID, ok := actAs(c, req.UserID)
	if !ok {
		return
	}

	result, err := h.orderSvc.Create(c.Request.Context(), ports.CreateOrderRequest{
		UserID:      userID,
		FiatAmount:  req.FiatAmount,
		TokenAmount: req.TokenAmount,
		Token:       domain.Token(req.Token),
		Fiat:        req.Fiat,
		Country:     req.Country,
		Kind:        domain.TransactionKind(req.Kind),
		PayoutInfo:  req.PayoutInfo,
		FiatRate:    req.FiatRate,
		TokenRate:   req.TokenRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	tagResource(c, result.Transaction.ID.String())
	response.Created(c, result)
}

// Debit handles POST /order/debit.
func (h *OrderHandler) Debit(c *gin.Context) {
	var req dto.DebitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	userID, ok := actAs(c, req.UserID)
	if !ok {
		return
	}
	txID, err := parseUUID(req.TxID, "tx_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	in := ports.DebitRequest{UserID: userID, TxID: txID, BlockchainTxID: req.BlockchainTxID}
	if req.Card != nil {
		card := ports.CardDetails(*req.Card)
		in.Card = &card
	}

	result, err := h.orderSvc.Debit(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	tagResource(c, txID.String())
	response.OK(c, result)
}

// Credit handles POST /order/credit.
func (h *OrderHandler) Credit(c *gin.Context) {
	userID, txID, ok := bindTx(c)
	if !ok {
		return
	}

	result, err := h.orderSvc.Credit(c.Request.Context(), userID, txID)
	if err != nil {
		response.Error(c, err)
		return
	}

	tagResource(c, txID.String())
	response.OK(c, result)
}

// Complete handles POST /order/complete.
func (h *OrderHandler) Complete(c *gin.Context) {
	userID, txID, ok := bindTx(c)
	if !ok {
		return
	}

	result, err := h.orderSvc.Complete(c.Request.Context(), userID, txID)
	if err != nil {
		response.Error(c, err)
		return
	}

	tagResource(c, txID.String())
	response.OK(c, result)
}

// OverrideStatus handles PATCH /order/:id/:userId/:status.
func (h *OrderHandler) OverrideStatus(c *gin.Context) {
	var uri dto.OverrideStatusURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	userID, ok := actAs(c, uri.UserID)
	if !ok {
		return
	}
	txID, err := parseUUID(uri.ID, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	txn, err := h.orderSvc.UpdateStatus(c.Request.Context(), txID, userID, uri.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txn)
}

// Fail handles POST /order/:id/fail.
func (h *OrderHandler) Fail(c *gin.Context) {
	txID, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.FailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	userID, ok := actAs(c, req.UserID)
	if !ok {
		return
	}

	txn, err := h.orderSvc.Fail(c.Request.Context(), txID, userID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txn)
}

// Get handles GET /order/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	txID, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	txn, err := h.orderSvc.GetByID(c.Request.Context(), txID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !middleware.AuthorizeUser(c, txn.UserID) {
		return
	}
	response.OK(c, txn)
}

// ListByUser handles GET /order/by-user/:userId.
func (h *OrderHandler) ListByUser(c *gin.Context) {
	userID, ok := actAs(c, c.Param("userId"))
	if !ok {
		return
	}

	txns, err := h.orderSvc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txns)
}

// UserAccountTx handles GET /order/user-account/:userId.
func (h *OrderHandler) UserAccountTx(c *gin.Context) {
	userID, ok := actAs(c, c.Param("userId"))
	if !ok {
		return
	}

	result, err := h.orderSvc.NewUserAccountTx(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

func bindTx(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	var req dto.TxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return uuid.Nil, uuid.Nil, false
	}
	userID, ok := actAs(c, req.UserID)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	txID, err := parseUUID(req.TxID, "tx_id")
	if err != nil {
		response.Error(c, err)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, txID, true
}
