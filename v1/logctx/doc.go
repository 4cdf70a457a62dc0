// Package logctx propagates a request-scoped logger implicitly across a
// call graph, without threading the handle through every function
// signature.
//
// The ambient store is context.Context: a scope established by
// RunWithLogger travels with the context through everything the body
// calls, spawns or awaits, and ends when the body returns. Two extents
// running concurrently never see each other's logger because each
// goroutine only carries its own context chain — scope follows the
// causal branch, not wall-clock concurrency.
//
//	err := logctx.RunWithLogger(ctx, reqLog, func(ctx context.Context) error {
//	    return handle(ctx)
//	})
//
//	func handle(ctx context.Context) error {
//	    if log, ok := logctx.FromContext(ctx); ok {
//	        log.Info("handling", nil, nil)
//	    }
//	    ...
//	}
//
// The scope record is mutable in place: UpdateLogger swaps the bound
// logger for the remainder of the current extent and for descendants
// spawned afterwards. A typical use is enriching the scope once a user
// has been authenticated:
//
//	if log, ok := logctx.FromContext(ctx); ok {
//	    logctx.UpdateLogger(ctx, log.With(map[string]interface{}{"user_id": uid}))
//	}
//
// Nested RunWithLogger calls shadow the enclosing scope for their own
// extent only. FromContext outside any scope returns false; UpdateLogger
// outside any scope warns and no-ops. Neither ever blocks or fails the
// caller.
package logctx
