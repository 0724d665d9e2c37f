package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreMetrics содержит метрики магазина
type StoreMetrics struct {
	// Созданные заказы по типам (buy/sell/gift)
	OrdersCreatedTotal *prometheus.CounterVec

	// Разрешенные заказы по типам и решениям
	OrdersResolvedTotal *prometheus.CounterVec

	// Возвраты по исходам
	ReversalsTotal *prometheus.CounterVec

	// Попытки claim кодов розыгрыша по результатам
	GiveawayClaimsTotal *prometheus.CounterVec

	// Сбои доставки уведомлений администраторам
	NotificationFailuresTotal prometheus.Counter
}

// NewStoreMetrics регистрирует метрики в переданном Registerer
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	factory := promauto.With(reg)

	return &StoreMetrics{
		OrdersCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starstore_orders_created_total",
				Help: "Общее количество созданных заказов",
			},
			[]string{"order_type"},
		),

		OrdersResolvedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starstore_orders_resolved_total",
				Help: "Общее количество разрешенных заказов",
			},
			[]string{"order_type", "decision"},
		),

		ReversalsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starstore_reversals_total",
				Help: "Общее количество разрешенных запросов на возврат",
			},
			[]string{"decision"},
		),

		GiveawayClaimsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starstore_giveaway_claims_total",
				Help: "Общее количество попыток claim кодов розыгрыша",
			},
			[]string{"result"},
		),

		NotificationFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "starstore_notification_failures_total",
				Help: "Общее количество сбоев доставки сообщений администраторам",
			},
		),
	}
}

// RecordOrderCreated записывает созданный заказ
func (m *StoreMetrics) RecordOrderCreated(orderType string) {
	m.OrdersCreatedTotal.WithLabelValues(orderType).Inc()
}

// RecordOrderResolved записывает разрешенный заказ
func (m *StoreMetrics) RecordOrderResolved(orderType, decision string) {
	m.OrdersResolvedTotal.WithLabelValues(orderType, decision).Inc()
}

// RecordReversal записывает разрешенный возврат
func (m *StoreMetrics) RecordReversal(decision string) {
	m.ReversalsTotal.WithLabelValues(decision).Inc()
}

// RecordGiveawayClaim записывает попытку claim
func (m *StoreMetrics) RecordGiveawayClaim(result string) {
	m.GiveawayClaimsTotal.WithLabelValues(result).Inc()
}

// RecordNotificationFailure записывает сбой доставки уведомления
func (m *StoreMetrics) RecordNotificationFailure() {
	m.NotificationFailuresTotal.Inc()
}
