package handler

import (
	"strings"

	"ramp-gateway/internal/adapter/http/dto"
	"ramp-gateway/internal/core/ports"
	"ramp-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// MarketHandler serves forex rates and the bank list.
type MarketHandler struct {
	marketSvc ports.MarketService
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketSvc ports.MarketService) *MarketHandler {
	return &MarketHandler{marketSvc: marketSvc}
}

// Rate handles GET /rates/:symbol.
func (h *MarketHandler) Rate(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	rate, err := h.marketSvc.Rate(c.Request.Context(), symbol)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RateResponse{Base: "USD", Symbol: symbol, Rate: rate})
}

// Banks handles GET /banks.
func (h *MarketHandler) Banks(c *gin.Context) {
	banks, err := h.marketSvc.Banks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, banks)
}
