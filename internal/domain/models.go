package domain

import "time"

// OrderStatus представляет статус заказа (покупка, продажа, подарок)
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusDeclined  OrderStatus = "declined"
	OrderStatusReversed  OrderStatus = "reversed"
)

// ReversalStatus представляет статус запроса на возврат
type ReversalStatus string

const (
	ReversalStatusPending  ReversalStatus = "pending"
	ReversalStatusApproved ReversalStatus = "approved"
	ReversalStatusDeclined ReversalStatus = "declined"
)

// ReferralStatus представляет статус реферала
type ReferralStatus string

const (
	ReferralStatusPending ReferralStatus = "pending"
	ReferralStatusActive  ReferralStatus = "active"
)

// GiveawayStatus представляет статус кода розыгрыша
type GiveawayStatus string

const (
	GiveawayStatusActive    GiveawayStatus = "active"
	GiveawayStatusCompleted GiveawayStatus = "completed"
	GiveawayStatusRejected  GiveawayStatus = "rejected"
	GiveawayStatusExpired   GiveawayStatus = "expired"
)

// Decision представляет решение администратора по заказу или возврату
type Decision string

const (
	DecisionComplete Decision = "complete"
	DecisionDecline  Decision = "decline"
)

// User представляет пользователя бота
type User struct {
	TelegramID int64     `json:"telegramId"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"created_at"`
}

// BuyOrder представляет заказ на покупку звезд или премиума
type BuyOrder struct {
	ID            string      `json:"id"`
	TelegramID    int64       `json:"telegramId"`
	Username      string      `json:"username"`
	Amount        float64     `json:"amount"`
	Stars         int         `json:"stars,omitempty"`
	PremiumMonths int         `json:"premiumDuration,omitempty"`
	WalletAddress string      `json:"walletAddress"`
	IsPremium     bool        `json:"isPremium"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"dateCreated"`
	ResolvedAt    *time.Time  `json:"dateResolved,omitempty"`
}

// SellOrder представляет заказ на продажу звезд
type SellOrder struct {
	ID            string      `json:"id"`
	TelegramID    int64       `json:"telegramId"`
	Username      string      `json:"username"`
	Stars         int         `json:"stars"`
	WalletAddress string      `json:"walletAddress"`
	Status        OrderStatus `json:"status"`
	Reversible    bool        `json:"reversible"`
	CreatedAt     time.Time   `json:"dateCreated"`
	PaidAt        *time.Time  `json:"datePaid,omitempty"`
	ResolvedAt    *time.Time  `json:"dateResolved,omitempty"`
}

// ReversalRequest представляет запрос на возврат pending заказа на продажу
type ReversalRequest struct {
	ID          string         `json:"id"`
	OrderID     string         `json:"originalOrderId"`
	TelegramID  int64          `json:"telegramId"`
	Username    string         `json:"username"`
	Stars       int            `json:"stars"`
	Status      ReversalStatus `json:"status"`
	RequestedAt time.Time      `json:"dateRequested"`
	ResolvedAt  *time.Time     `json:"dateResolved,omitempty"`
}

// Referral представляет связь реферера и приглашенного пользователя
type Referral struct {
	ID          int64          `json:"-"`
	ReferrerID  int64          `json:"referrerUserId"`
	ReferredID  int64          `json:"referredUserId"`
	Status      ReferralStatus `json:"status"`
	ReferredAt  time.Time      `json:"dateReferred"`
	ActivatedAt *time.Time     `json:"dateCompleted,omitempty"`
}

// ReferralSummary представляет сводку по рефералам пользователя
type ReferralSummary struct {
	Count           int              `json:"count"`
	EarnedStars     int              `json:"earnedStars"`
	RecentReferrals []RecentReferral `json:"recentReferrals"`
}

// RecentReferral представляет недавнего реферала в сводке
type RecentReferral struct {
	Name    int64          `json:"name"`
	Status  ReferralStatus `json:"status"`
	DaysAgo int            `json:"daysAgo"`
}

// GiveawayCode представляет код розыгрыша
type GiveawayCode struct {
	Code         string         `json:"code"`
	ClaimLimit   int            `json:"limit"`
	ClaimedCount int            `json:"claimed"`
	Status       GiveawayStatus `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	ExpiresAt    time.Time      `json:"expiresAt"`
}

// GiftOrder представляет бонусный заказ, порожденный розыгрышем
type GiftOrder struct {
	ID            string      `json:"id"`
	TelegramID    int64       `json:"telegramId"`
	Username      string      `json:"username"`
	Stars         int         `json:"stars"`
	WalletAddress string      `json:"walletAddress"`
	GiveawayCode  string      `json:"giveawayCode"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"dateCreated"`
	ResolvedAt    *time.Time  `json:"dateResolved,omitempty"`
}

// AdminMessageRef хранит ссылку на сообщение администратору для последующего
// редактирования (снятия inline-кнопок)
type AdminMessageRef struct {
	OrderID   string `json:"orderId"`
	AdminID   int64  `json:"adminId"`
	MessageID int    `json:"messageId"`
}

// AdminButton представляет кнопку inline-клавиатуры администратора
type AdminButton struct {
	Text string
	Data string
}

// AdminKeyboard представляет один ряд кнопок действий администратора
type AdminKeyboard struct {
	Buttons []AdminButton
}

// DeliveryResult представляет исход доставки сообщения одному администратору
type DeliveryResult struct {
	AdminID   int64
	MessageID int
	Err       error
}

// Notification представляет баннер-уведомление для веб-формы
type Notification struct {
	ID        int64     `json:"-"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"timestamp"`
}
