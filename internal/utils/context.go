package utils

import (
	"context"
	"time"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	TimeKey      ContextKey = "time"
	PathKey      ContextKey = "path"
	MethodKey    ContextKey = "method"
	RouteKey     ContextKey = "route"
)

// ContextKeys lists every key the request middleware may set.
var ContextKeys = map[ContextKey]struct{}{
	RequestIDKey: {},
	TimeKey:      {},
	PathKey:      {},
	MethodKey:    {},
	RouteKey:     {},
}

func GetContextValue(ctx context.Context, key ContextKey) (any, bool) {
	val := ctx.Value(key)
	return val, val != nil
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}

func GetPath(ctx context.Context) (string, bool) {
	path, ok := ctx.Value(PathKey).(string)
	return path, ok
}

func GetMethod(ctx context.Context) (string, bool) {
	method, ok := ctx.Value(MethodKey).(string)
	return method, ok
}

func SetRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, RouteKey, route)
}

func GetRoute(ctx context.Context) (string, bool) {
	route, ok := ctx.Value(RouteKey).(string)
	return route, ok
}

func ElapsedTime(ctx context.Context) (time.Duration, bool) {
	start, ok := ctx.Value(TimeKey).(time.Time)
	if !ok {
		return 0, false
	}
	return time.Since(start), true
}
