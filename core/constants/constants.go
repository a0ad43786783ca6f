package constants

import "time"

// Database tuning
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Timeouts
const (
	DefaultTimeout        = 30 * time.Second
	DefaultRequestTimeout = 10 * time.Second
	ShutdownTimeout       = 15 * time.Second
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "token:blacklist:"
	RedisKeyLoginAttempts  = "login:attempts:"
)

// Login throttling
const (
	MaxLoginAttempts = 5
	BlockDuration    = 15 * time.Minute
)

// Context keys set by the auth middleware
const (
	ContextTokenData = "token_data"
	ContextUserID    = "user_id"
)

// Calendar engine tick intervals. Tunable, not correctness-critical:
// a reminder may fire up to one interval late.
const (
	ReminderScanInterval    = 60 * time.Second
	StatusReconcileInterval = 60 * time.Second
)

// Asynq task types
const (
	TaskReminderDeliver = "reminder:deliver"
)

// Presigned URL lifetime for material downloads
const (
	MaterialURLExpiry = 15 * time.Minute
)
