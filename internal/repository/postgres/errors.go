package postgres

import "errors"

// Ошибки заказов
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrAlreadyResolved = errors.New("order already resolved")
	ErrNotReversible   = errors.New("order is not reversible")
)

// Ошибки возвратов
var (
	ErrReversalNotFound = errors.New("reversal request not found")
	ErrReversalExists   = errors.New("pending reversal request already exists")
)

// Ошибки рефералов
var (
	ErrReferralExists   = errors.New("referral already exists")
	ErrReferralNotFound = errors.New("referral not found")
)

// Ошибки кодов розыгрыша
var (
	ErrCodeNotFound       = errors.New("giveaway code not found")
	ErrCodeExists         = errors.New("giveaway code already exists")
	ErrCodeAlreadyClaimed = errors.New("giveaway code already claimed by user")
	ErrCodeExhausted      = errors.New("giveaway code is not active or limit reached")
)

// Ошибки подарочных заказов
var (
	ErrGiftNotFound = errors.New("gift order not found")
)
