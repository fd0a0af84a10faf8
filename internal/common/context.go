package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID     contextKey = "request_id"
	ContextKeyCallerAddress contextKey = "caller_address"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithCallerAddress adds the caller's address to the context
func WithCallerAddress(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, ContextKeyCallerAddress, addr)
}

// CallerAddressFromContext extracts the caller's address from context
func CallerAddressFromContext(ctx context.Context) string {
	if addr, ok := ctx.Value(ContextKeyCallerAddress).(string); ok {
		return addr
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
