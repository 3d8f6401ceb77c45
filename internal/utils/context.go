// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the transports: context keys,
// JSON responses, the resty client constructor and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so they never collide with
// string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey stores the request trace id set by the HTTP middleware.
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext returns the trace id stored in ctx, if any.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
