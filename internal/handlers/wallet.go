package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

type WalletHandler struct {
	walletAddress string
	logger        *zap.Logger
}

func NewWalletHandler(walletAddress string, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{
		walletAddress: walletAddress,
		logger:        logger,
	}
}

type walletResponse struct {
	WalletAddress string `json:"walletAddress"`
}

// GetWalletAddress возвращает адрес кошелька для приема оплаты
func (h *WalletHandler) GetWalletAddress(w http.ResponseWriter, r *http.Request) {
	if h.walletAddress == "" {
		h.logger.Error("wallet address is not configured")
		writeError(w, h.logger, http.StatusInternalServerError, "wallet address is not configured")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, walletResponse{WalletAddress: h.walletAddress})
}
