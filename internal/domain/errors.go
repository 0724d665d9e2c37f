package domain

import "errors"

// Ошибки валидации и авторизации
var (
	ErrInvalidSelection = errors.New("invalid package selection")
	ErrBanned           = errors.New("user is banned")
	ErrNotAdmin         = errors.New("user is not an administrator")
)

// Ошибки заказов
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrAlreadyResolved = errors.New("order already resolved")
	ErrNotReversible   = errors.New("order is not reversible")
)

// Ошибки возвратов
var (
	ErrReversalNotFound = errors.New("reversal request not found")
	ErrReversalPending  = errors.New("reversal request already pending")
	ErrRefundFailed     = errors.New("refund call failed")
)

// Ошибки рефералов
var (
	ErrReferralExists   = errors.New("referral already exists")
	ErrReferralNotFound = errors.New("referral not found")
)

// Ошибки кодов розыгрыша
var (
	ErrCodeNotFound       = errors.New("giveaway code not found")
	ErrCodeNotActive      = errors.New("giveaway code is not active")
	ErrCodeAlreadyClaimed = errors.New("giveaway code already claimed by user")
	ErrCodeLimitReached   = errors.New("giveaway code claim limit reached")
	ErrCodeExpired        = errors.New("giveaway code expired")
	ErrCodeExists         = errors.New("giveaway code already exists")
)

// Ошибки подарочных заказов
var (
	ErrGiftNotFound = errors.New("gift order not found")
)
