package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avc/starstore/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReferralService определяет методы реферальной программы.
type ReferralService interface {
	Summary(ctx context.Context, referrerID int64) (*domain.ReferralSummary, error)
}

type ReferralsHandler struct {
	referralService ReferralService
	logger          *zap.Logger
}

func NewReferralsHandler(referralService ReferralService, logger *zap.Logger) *ReferralsHandler {
	return &ReferralsHandler{
		referralService: referralService,
		logger:          logger,
	}
}

func (h *ReferralsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	telegramID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid user id")
		return
	}

	summary, err := h.referralService.Summary(r.Context(), telegramID)
	if err != nil {
		h.logger.Error("failed to build referral summary", zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, summary)
}
