package handlers

import (
	"context"
	"net/http"

	"github.com/avc/starstore/internal/domain"
	"go.uber.org/zap"
)

// NotificationStore определяет чтение баннер-уведомлений.
type NotificationStore interface {
	ListNotifications(ctx context.Context) ([]*domain.Notification, error)
}

type NotificationsHandler struct {
	store  NotificationStore
	logger *zap.Logger
}

func NewNotificationsHandler(store NotificationStore, logger *zap.Logger) *NotificationsHandler {
	return &NotificationsHandler{
		store:  store,
		logger: logger,
	}
}

func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.store.ListNotifications(r.Context())
	if err != nil {
		h.logger.Error("failed to list notifications", zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	if notifications == nil {
		notifications = []*domain.Notification{}
	}

	writeJSON(w, h.logger, http.StatusOK, notifications)
}
