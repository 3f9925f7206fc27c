package handler

import (
	"ramp-gateway/internal/adapter/http/dto"
	"ramp-gateway/internal/adapter/http/middleware"
	"ramp-gateway/internal/core/ports"
	"ramp-gateway/pkg/apperror"
	"ramp-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user signup and wallet linking.
type UserHandler struct {
	userSvc ports.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userSvc ports.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Signup handles POST /users.
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	user, err := h.userSvc.Signup(c.Request.Context(), ports.SignupRequest{
		Username:       req.Username,
		Email:          req.Email,
		WalletAddress:  req.WalletAddress,
		KYCFields:      req.KYCFields,
		PaymentDetails: req.PaymentDetails,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxUserID, user.ID)
	tagResource(c, user.ID.String())
	response.Created(c, user)
}

// LinkWallet handles PUT /users/:id/wallet.
func (h *UserHandler) LinkWallet(c *gin.Context) {
	userID, ok := actAs(c, c.Param("id"))
	if !ok {
		return
	}

	var req dto.LinkWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	user, err := h.userSvc.LinkWallet(c.Request.Context(), userID, req.WalletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := actAs(c, c.Param("id"))
	if !ok {
		return
	}

	user, err := h.userSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}
