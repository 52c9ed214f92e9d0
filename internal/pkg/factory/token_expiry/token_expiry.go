package token_expiry

import (
	"time"
)

type TokenExpiryFactory struct {
	ttl time.Duration
}

func New(ttl time.Duration) *TokenExpiryFactory {
	return &TokenExpiryFactory{ttl: ttl}
}

func (f *TokenExpiryFactory) CalculateExpiry(baseTime time.Time) time.Time {
	return baseTime.Add(f.ttl)
}
