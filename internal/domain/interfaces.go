package domain

import (
	"context"
	"time"
)

// UserRepository определяет методы для работы с пользователями и банами
type UserRepository interface {
	UpsertUser(ctx context.Context, telegramID int64, username string) error
	ListUsers(ctx context.Context) ([]*User, error)
	IsBanned(ctx context.Context, telegramID int64) (bool, error)
	Ban(ctx context.Context, telegramID int64) error
	Unban(ctx context.Context, telegramID int64) error
}

// BuyOrderRepository определяет методы для работы с заказами на покупку
type BuyOrderRepository interface {
	CreateBuyOrder(ctx context.Context, order *BuyOrder) error
	GetBuyOrder(ctx context.Context, id string) (*BuyOrder, error)
	ListBuyOrdersByUser(ctx context.Context, telegramID int64) ([]*BuyOrder, error)
	ResolveBuyOrder(ctx context.Context, id string, status OrderStatus) (*BuyOrder, error)
}

// SellOrderRepository определяет методы для работы с заказами на продажу
type SellOrderRepository interface {
	CreateSellOrder(ctx context.Context, order *SellOrder) error
	GetSellOrder(ctx context.Context, id string) (*SellOrder, error)
	ListSellOrdersByUser(ctx context.Context, telegramID int64) ([]*SellOrder, error)
	MarkSellOrderPaid(ctx context.Context, id string) (*SellOrder, error)
	ResolveSellOrder(ctx context.Context, id string, status OrderStatus) (*SellOrder, error)
}

// ReversalRepository определяет методы для работы с запросами на возврат.
// ApproveReversal выполняет refund внутри транзакции под блокировкой по
// заказу: оба статуса фиксируются только после успешного возврата звезд.
type ReversalRepository interface {
	CreateReversal(ctx context.Context, req *ReversalRequest) error
	GetReversal(ctx context.Context, id string) (*ReversalRequest, error)
	ApproveReversal(ctx context.Context, id string, refund func(ctx context.Context, req *ReversalRequest) error) (*ReversalRequest, error)
	ResolveReversal(ctx context.Context, id string, status ReversalStatus) (*ReversalRequest, error)
}

// ReferralRepository определяет методы для работы с рефералами
type ReferralRepository interface {
	CreateReferral(ctx context.Context, referrerID, referredID int64) error
	ActivatePendingReferral(ctx context.Context, referredID int64) (*Referral, error)
	ListReferralsByReferrer(ctx context.Context, referrerID int64) ([]*Referral, error)
}

// GiveawayRepository определяет методы для работы с кодами розыгрыша
type GiveawayRepository interface {
	CreateCode(ctx context.Context, code *GiveawayCode) error
	GetCode(ctx context.Context, code string) (*GiveawayCode, error)
	RegisterClaim(ctx context.Context, code string, telegramID int64) error
	SetCodeStatus(ctx context.Context, code string, status GiveawayStatus) error
	ExpireOverdueCodes(ctx context.Context) (int64, error)
	GetActiveClaim(ctx context.Context, telegramID int64) (*GiveawayCode, error)
}

// GiftRepository определяет методы для работы с подарочными заказами
type GiftRepository interface {
	CreateGift(ctx context.Context, gift *GiftOrder) error
	GetGift(ctx context.Context, id string) (*GiftOrder, error)
	ResolveGift(ctx context.Context, id string, status OrderStatus) (*GiftOrder, error)
}

// AdminMessageRepository хранит ссылки на сообщения администраторам
type AdminMessageRepository interface {
	SaveAdminMessages(ctx context.Context, refs []AdminMessageRef) error
	ListAdminMessages(ctx context.Context, orderID string) ([]AdminMessageRef, error)
}

// NotificationRepository определяет методы для работы с баннер-уведомлениями
type NotificationRepository interface {
	SetNotification(ctx context.Context, message string) error
	ListNotifications(ctx context.Context) ([]*Notification, error)
}

// Notifier рассылает сообщения пользователям и администраторам.
// NotifyAdmins возвращает исход доставки по каждому администратору —
// частичный сбой не прерывает рассылку остальным.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
	NotifyAdmins(ctx context.Context, text string, keyboard *AdminKeyboard) []DeliveryResult
	RetractKeyboards(ctx context.Context, refs []AdminMessageRef)
}

// PaymentsClient определяет методы взаимодействия с платежным API Telegram
type PaymentsClient interface {
	CreateInvoiceLink(ctx context.Context, chatID int64, orderID string, stars int) (string, error)
	RefundStars(ctx context.Context, chatID int64, stars int) error
}

// OrderService определяет операции жизненного цикла заказов
type OrderService interface {
	CreateBuyOrder(ctx context.Context, req *CreateBuyOrderRequest) (*BuyOrder, error)
	CreateSellOrder(ctx context.Context, req *CreateSellOrderRequest) (*SellOrder, string, error)
	ConfirmSellPayment(ctx context.Context, orderID string) (*SellOrder, error)
	ResolveBuyOrder(ctx context.Context, orderID string, decision Decision) (*BuyOrder, error)
	ResolveSellOrder(ctx context.Context, orderID string, decision Decision) (*SellOrder, error)
	ListTransactions(ctx context.Context, telegramID int64) ([]*Transaction, error)
}

// ReversalService определяет операции возврата заказов на продажу
type ReversalService interface {
	RequestReversal(ctx context.Context, orderID string, requesterID int64) (*ReversalRequest, error)
	ResolveReversal(ctx context.Context, reversalID string, decision Decision) (*ReversalRequest, error)
}

// GiveawayService определяет операции движка розыгрышей
type GiveawayService interface {
	IssueCode(ctx context.Context, code string, limit int) (*GiveawayCode, error)
	Claim(ctx context.Context, code string, telegramID int64) error
	OnBuyOrderCompleted(ctx context.Context, order *BuyOrder) error
	OnBuyOrderDeclined(ctx context.Context, order *BuyOrder) error
	ResolveGift(ctx context.Context, giftID string, decision Decision) (*GiftOrder, error)
}

// ReferralService определяет операции реферальной программы
type ReferralService interface {
	CreateReferral(ctx context.Context, referrerID, referredID int64) error
	ActivateOnPurchase(ctx context.Context, buyerID int64, username string) error
	Summary(ctx context.Context, referrerID int64) (*ReferralSummary, error)
}

// CreateBuyOrderRequest представляет запрос на создание заказа на покупку
type CreateBuyOrderRequest struct {
	TelegramID    int64  `json:"telegramId"`
	Username      string `json:"username"`
	Stars         int    `json:"stars"`
	WalletAddress string `json:"walletAddress"`
	IsPremium     bool   `json:"isPremium"`
	PremiumMonths int    `json:"premiumDuration"`
}

// CreateSellOrderRequest представляет запрос на создание заказа на продажу
type CreateSellOrderRequest struct {
	TelegramID    int64  `json:"telegramId"`
	Username      string `json:"username"`
	Stars         int    `json:"stars"`
	WalletAddress string `json:"walletAddress"`
}

// Transaction представляет заказ в объединенной истории пользователя
type Transaction struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Stars     int         `json:"stars,omitempty"`
	Amount    float64     `json:"amount,omitempty"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"dateCreated"`
}
