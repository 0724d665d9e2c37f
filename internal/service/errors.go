package service

import "errors"

// Ошибки валидации входных данных
var (
	ErrInvalidDecision   = errors.New("invalid decision")
	ErrInvalidStarCount  = errors.New("invalid star count")
	ErrInvalidClaimLimit = errors.New("invalid claim limit")
)
