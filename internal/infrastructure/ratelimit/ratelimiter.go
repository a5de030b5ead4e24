package ratelimit

import "time"

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// RateLimiter throttles abusable public endpoints, keyed by client IP or
// account.
type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

// LoginConfig throttles credential guessing on the login endpoint.
func LoginConfig() RateLimitConfig {
	return RateLimitConfig{RequestsPerMinute: 10, RequestsPerHour: 60}
}

// ContactConfig throttles contact form spam.
func ContactConfig() RateLimitConfig {
	return RateLimitConfig{RequestsPerMinute: 3, RequestsPerHour: 10, RequestsPerDay: 30}
}

// VerificationConfig throttles verification code resends.
func VerificationConfig() RateLimitConfig {
	return RateLimitConfig{RequestsPerMinute: 2, RequestsPerHour: 10}
}
