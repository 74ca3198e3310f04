package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetRequestID(t *testing.T) {
	ctx := SetRequestID(context.Background(), "req-1")

	id, ok := GetRequestID(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-1", id)
}

func TestGetRequestIDMissing(t *testing.T) {
	id, ok := GetRequestID(context.Background())
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestGetPath(t *testing.T) {
	ctx := context.WithValue(context.Background(), PathKey, "/api/v1/trends")

	path, ok := GetPath(ctx)
	require.True(t, ok)
	assert.Equal(t, "/api/v1/trends", path)
}

func TestGetPathMissing(t *testing.T) {
	path, ok := GetPath(context.Background())
	assert.False(t, ok)
	assert.Empty(t, path)
}

func TestGetMethod(t *testing.T) {
	ctx := context.WithValue(context.Background(), MethodKey, "POST")

	method, ok := GetMethod(ctx)
	require.True(t, ok)
	assert.Equal(t, "POST", method)
}

func TestGetMethodMissing(t *testing.T) {
	method, ok := GetMethod(context.Background())
	assert.False(t, ok)
	assert.Empty(t, method)
}

func TestSetAndGetRoute(t *testing.T) {
	ctx := SetRoute(context.Background(), "/api/v1/trends/{trend_id}")

	route, ok := GetRoute(ctx)
	require.True(t, ok)
	assert.Equal(t, "/api/v1/trends/{trend_id}", route)
}

func TestGetContextValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "test-id")

	val, ok := GetContextValue(ctx, RequestIDKey)
	require.True(t, ok)
	assert.Equal(t, "test-id", val)
}

func TestGetContextValueMissing(t *testing.T) {
	val, ok := GetContextValue(context.Background(), RequestIDKey)
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestElapsedTime(t *testing.T) {
	ctx := context.WithValue(context.Background(), TimeKey, time.Now().Add(-100*time.Millisecond))

	elapsed, ok := ElapsedTime(ctx)
	require.True(t, ok)
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
}

func TestElapsedTimeMissing(t *testing.T) {
	elapsed, ok := ElapsedTime(context.Background())
	assert.False(t, ok)
	assert.Equal(t, time.Duration(0), elapsed)
}

func TestContextKeys(t *testing.T) {
	expectedKeys := []ContextKey{
		RequestIDKey,
		TimeKey,
		PathKey,
		MethodKey,
		RouteKey,
	}

	for _, key := range expectedKeys {
		_, exists := ContextKeys[key]
		assert.True(t, exists, "expected key %s to be in ContextKeys", key)
	}

	assert.Equal(t, len(expectedKeys), len(ContextKeys))
}
