package domain

// Таблицы допустимых переходов статусов. Любой переход, которого нет в
// таблице, отклоняется — статусы не меняются произвольно. Заказы на
// покупку и подарочные заказы переходят только pending -> терминальный,
// это обеспечивают условные UPDATE в репозиториях.
var (
	sellOrderTransitions = map[OrderStatus][]OrderStatus{
		OrderStatusPending: {OrderStatusCompleted, OrderStatusDeclined, OrderStatusReversed},
	}

	reversalTransitions = map[ReversalStatus][]ReversalStatus{
		ReversalStatusPending: {ReversalStatusApproved, ReversalStatusDeclined},
	}

	giveawayTransitions = map[GiveawayStatus][]GiveawayStatus{
		GiveawayStatusActive: {GiveawayStatusCompleted, GiveawayStatusRejected, GiveawayStatusExpired},
	}
)

func contains[S ~string](allowed []S, to S) bool {
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// CanTransitionSellOrder проверяет переход статуса заказа на продажу
func CanTransitionSellOrder(from, to OrderStatus) bool {
	return contains(sellOrderTransitions[from], to)
}

// CanTransitionReversal проверяет переход статуса запроса на возврат
func CanTransitionReversal(from, to ReversalStatus) bool {
	return contains(reversalTransitions[from], to)
}

// CanTransitionGiveaway проверяет переход статуса кода розыгрыша
func CanTransitionGiveaway(from, to GiveawayStatus) bool {
	return contains(giveawayTransitions[from], to)
}
