package request

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Aleph-Alpha/scopedlog/v1/logctx"
	"github.com/Aleph-Alpha/scopedlog/v1/logger"
	"github.com/Aleph-Alpha/scopedlog/v1/metrics"
	"github.com/Aleph-Alpha/scopedlog/v1/tracer"
)

// DefaultRequestIDKey is the field name under which the generated request
// id is bound on the scoped logger.
const DefaultRequestIDKey = "request_id"

// Handler is the unit of work the wrapper runs. The event carries the raw
// request payload; the context carries the scoped logger for everything the
// handler calls.
type Handler func(ctx context.Context, event map[string]interface{}) (interface{}, error)

// FieldExtractor derives identifying fields from an incoming event, for
// example a user id or tenant. The returned map is bound on the request
// logger alongside the generated request id. Returning nil is fine.
type FieldExtractor func(event map[string]interface{}) map[string]interface{}

type options struct {
	extractor    FieldExtractor
	tracerClient *tracer.Tracer
	collector    *metrics.Metrics
	requestIDKey string
	spanName     string
}

// Option customizes the behavior of Wrap.
type Option func(*options)

// WithExtractor sets the extractor that pulls identifying fields out of
// each event. Extracted fields pass through the logger's redaction policy
// like any other field, so sensitive identifiers stay protected.
func WithExtractor(fn FieldExtractor) Option {
	return func(o *options) { o.extractor = fn }
}

// WithTracer makes the wrapper open a span per invocation and record
// handler failures on it. The span covers the handler's full extent.
func WithTracer(tc *tracer.Tracer) Option {
	return func(o *options) { o.tracerClient = tc }
}

// WithMetrics makes the wrapper record the handler's duration under the
// request_duration_seconds histogram, labeled with the span name.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.collector = m }
}

// WithRequestIDKey overrides the field name the generated request id is
// bound under. Default: "request_id".
func WithRequestIDKey(key string) Option {
	return func(o *options) { o.requestIDKey = key }
}

// WithSpanName sets the name used for the per-request span and the
// duration metric label. Default: "handle-request".
func WithSpanName(name string) Option {
	return func(o *options) { o.spanName = name }
}

// Wrap turns a Handler into one that runs inside a logger scope. Per
// invocation it generates a fresh request id, derives a child of base
// carrying the id and any extracted event fields, and establishes the
// child as the ambient logger for the handler's extent:
//
//	handle := request.Wrap(log, func(ctx context.Context, event map[string]interface{}) (interface{}, error) {
//	    if reqLog, ok := logctx.FromContext(ctx); ok {
//	        reqLog.Info("processing", nil, nil)
//	    }
//	    return process(ctx, event)
//	}, request.WithExtractor(userIDExtractor))
//
// Everything the handler calls or spawns with the given context sees the
// request logger through logctx.FromContext. Concurrent invocations are
// isolated from each other; the handler's result and error pass through
// unchanged.
func Wrap(base *logger.Logger, h Handler, opts ...Option) Handler {
	o := options{
		requestIDKey: DefaultRequestIDKey,
		spanName:     "handle-request",
	}
	for _, opt := range opts {
		opt(&o)
	}

	return func(ctx context.Context, event map[string]interface{}) (interface{}, error) {
		requestID := uuid.NewString()

		fields := map[string]interface{}{o.requestIDKey: requestID}
		if o.extractor != nil {
			for k, v := range o.extractor(event) {
				fields[k] = v
			}
		}
		reqLog := base.With(fields)

		if o.collector != nil {
			defer o.collector.RecordRequestDuration(time.Now(), o.spanName)
		}

		var result interface{}
		run := func(ctx context.Context) error {
			var err error
			result, err = h(ctx, event)
			return err
		}

		if o.tracerClient != nil {
			spanCtx, span := o.tracerClient.StartSpan(ctx, o.spanName)
			defer span.End()
			o.tracerClient.SetAttributes(span, map[string]interface{}{
				"request.id": requestID,
			})

			err := logctx.RunWithLogger(spanCtx, reqLog, run)
			if err != nil {
				o.tracerClient.RecordErrorOnSpan(span, err)
			}
			return result, err
		}

		err := logctx.RunWithLogger(ctx, reqLog, run)
		return result, err
	}
}
