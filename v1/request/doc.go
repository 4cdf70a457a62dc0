// Package request wires a logger scope around request-style entry points.
//
// Wrap adapts a Handler so that every invocation runs with its own scoped
// logger: a fresh request id is generated, identifying fields are pulled
// from the event, and a child logger carrying them becomes the ambient
// logger for the handler's whole extent via the logctx package. Deep call
// graphs then retrieve the request logger with logctx.FromContext instead
// of threading it through every signature.
//
//	handle := request.Wrap(log, processOrder,
//	    request.WithExtractor(func(event map[string]interface{}) map[string]interface{} {
//	        return map[string]interface{}{"user_id": event["user_id"]}
//	    }),
//	    request.WithTracer(tracerClient),
//	    request.WithMetrics(metricsInstance),
//	    request.WithSpanName("process-order"),
//	)
//
//	result, err := handle(ctx, event)
//
// With a tracer attached, each invocation runs inside its own span; handler
// failures are recorded on the span and still returned to the caller
// unchanged. With metrics attached, handler durations feed the
// request_duration_seconds histogram.
package request
