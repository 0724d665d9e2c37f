package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avc/starstore/internal/domain"
	"github.com/avc/starstore/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderService определяет методы работы с заказами.
type OrderService interface {
	CreateBuyOrder(ctx context.Context, req *domain.CreateBuyOrderRequest) (*domain.BuyOrder, error)
	CreateSellOrder(ctx context.Context, req *domain.CreateSellOrderRequest) (*domain.SellOrder, string, error)
	ListTransactions(ctx context.Context, telegramID int64) ([]*domain.Transaction, error)
}

type OrdersHandler struct {
	orderService OrderService
	logger       *zap.Logger
}

func NewOrdersHandler(orderService OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		logger:       logger,
	}
}

type buyOrderResponse struct {
	Success bool             `json:"success"`
	Order   *domain.BuyOrder `json:"order"`
}

type sellOrderResponse struct {
	Success     bool              `json:"success"`
	Order       *domain.SellOrder `json:"order"`
	PaymentLink string            `json:"paymentLink"`
}

func (h *OrdersHandler) CreateBuyOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBuyOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TelegramID == 0 {
		writeError(w, h.logger, http.StatusBadRequest, "telegramId is required")
		return
	}

	order, err := h.orderService.CreateBuyOrder(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSelection):
			writeError(w, h.logger, http.StatusBadRequest, "invalid stars or premium selection")
		case errors.Is(err, domain.ErrBanned):
			writeError(w, h.logger, http.StatusForbidden, "user is banned")
		default:
			h.logger.Error("failed to create buy order", zap.Error(err))
			writeError(w, h.logger, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, buyOrderResponse{Success: true, Order: order})
}

func (h *OrdersHandler) CreateSellOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSellOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TelegramID == 0 {
		writeError(w, h.logger, http.StatusBadRequest, "telegramId is required")
		return
	}

	order, paymentLink, err := h.orderService.CreateSellOrder(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStarCount):
			writeError(w, h.logger, http.StatusBadRequest, "invalid star count")
		case errors.Is(err, domain.ErrBanned):
			writeError(w, h.logger, http.StatusForbidden, "user is banned")
		default:
			h.logger.Error("failed to create sell order", zap.Error(err))
			writeError(w, h.logger, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, sellOrderResponse{Success: true, Order: order, PaymentLink: paymentLink})
}

func (h *OrdersHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	telegramID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid user id")
		return
	}

	transactions, err := h.orderService.ListTransactions(r.Context(), telegramID)
	if err != nil {
		h.logger.Error("failed to list transactions", zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, transactions)
}
