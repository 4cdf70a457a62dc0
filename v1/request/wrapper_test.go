package request

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/scopedlog/v1/logctx"
	"github.com/Aleph-Alpha/scopedlog/v1/logger"
)

func TestWrapBindsScopedLoggerWithRequestID(t *testing.T) {
	base, logs := logger.NewTestLogger(logger.Config{})

	handle := Wrap(base, func(ctx context.Context, event map[string]interface{}) (interface{}, error) {
		reqLog, ok := logctx.FromContext(ctx)
		require.True(t, ok, "handler runs inside a logger scope")
		reqLog.Info("handling", nil, nil)
		return "done", nil
	})

	result, err := handle(context.Background(), map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "done", result)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
}

func TestWrapGeneratesDistinctRequestIDs(t *testing.T) {
	base, logs := logger.NewTestLogger(logger.Config{})

	handle := Wrap(base, func(ctx context.Context, event map[string]interface{}) (interface{}, error) {
		reqLog, _ := logctx.FromContext(ctx)
		reqLog.Info("tick", nil, nil)
		return nil, nil
	})

	_, err := handle(context.Background(), nil)
	require.NoError(t, err)
	_, err = handle(context.Background(), nil)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	first := entries[0].ContextMap()["request_id"]
	second := entries[1].ContextMap()["request_id"]
	assert.NotEqual(t, first, second)
}

func TestWrapExtractorFieldsAreBound(t *testing.T) {
	base, logs := logger.NewTestLogger(logger.Config{})

	handle := Wrap(base,
		func(ctx context.Context, event map[string]interface{}) (interface{}, error) {
			reqLog, _ := logctx.FromContext(ctx)
			reqLog.Info("handling", nil, nil)
			return nil, nil
		},
		WithExtractor(func(event map[string]interface{}) map[string]interface{} {
			return map[string]interface{}{"user_id": event["user_id"]}
		}),
	)

	_, err := handle(context.Background(), map[string]interface{}{"user_id": "u-42"})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "u-42", entries[0].ContextMap()["user_id"])
}

func TestWrapCustomRequestIDKey(t *testing.T) {
	base, logs := logger.NewTestLogger(logger.Config{})

	handle := Wrap(base,
		func(ctx context.Context, event map[string]interface{}) (interface{}, error) {
			reqLog, _ := logctx.FromContext(ctx)
			reqLog.Info("handling", nil, nil)
			return nil, nil
		},
		WithRequestIDKey("correlation_id"),
	)

	_, err := handle(context.Background(), nil)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotEmpty(t, fields["correlation_id"])
	_, hasDefault := fields["request_id"]
	assert.False(t, hasDefault)
}

func TestWrapHandlerErrorPassesThrough(t *testing.T) {
	base, _ := logger.NewTestLogger(logger.Config{})
	sentinel := errors.New("handler failed")

	handle := Wrap(base, func(ctx context.Context, event map[string]interface{}) (interface{}, error) {
		return nil, sentinel
	})

	result, err := handle(context.Background(), nil)
	assert.Nil(t, result)
	assert.Same(t, sentinel, err)
}

func TestWrapScopeEndsWithInvocation(t *testing.T) {
	base, _ := logger.NewTestLogger(logger.Config{})

	outer := context.Background()
	handle := Wrap(base, func(ctx context.Context, event map[string]interface{}) (interface{}, error) {
		return nil, nil
	})

	_, err := handle(outer, nil)
	require.NoError(t, err)

	_, ok := logctx.FromContext(outer)
	assert.False(t, ok, "the caller's context never enters the scope")
}
