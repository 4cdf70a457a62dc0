package logctx

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/Aleph-Alpha/scopedlog/v1/logger"
)

// scopeKey is the private context key under which the current scope
// record is stored.
type scopeKey struct{}

// scope is the mutable record backing one RunWithLogger extent. Every
// context derived inside the extent references the same record, so an
// UpdateLogger performed anywhere in the branch is observed by later
// reads in the branch and in descendants spawned afterwards. Contexts are
// per-branch by construction, which is what keeps concurrent sibling
// extents isolated without locking; the atomic cell only guards the
// logger pointer itself.
type scope struct {
	logger atomic.Pointer[logger.Logger]
}

// RunWithLogger establishes a fresh scope holding log for the dynamic
// extent of body, including any work that derives its context from the
// one passed to body. body's error (or nil) is returned unchanged; the
// scope ends when body returns, on failure exactly as on success.
//
// Nested calls create a new, independently mutable scope visible only
// within the nested extent and its descendants; when the nested body
// returns, visibility reverts to the enclosing scope. Extents running
// concurrently never observe each other's scope, since each goroutine
// only ever sees its own context chain.
func RunWithLogger(ctx context.Context, log *logger.Logger, body func(ctx context.Context) error) error {
	sc := &scope{}
	sc.logger.Store(log)
	return body(context.WithValue(ctx, scopeKey{}, sc))
}

// FromContext returns the logger bound in the nearest enclosing scope,
// or (nil, false) when no scope is active. It never blocks. Callers that
// require a logger must treat an absent scope as a programming error on
// their side; this package does not fail.
func FromContext(ctx context.Context) (*logger.Logger, bool) {
	sc, ok := ctx.Value(scopeKey{}).(*scope)
	if !ok {
		return nil, false
	}
	l := sc.logger.Load()
	if l == nil {
		return nil, false
	}
	return l, true
}

// UpdateLogger replaces the logger bound in the current scope in place.
// The replacement is visible to every later FromContext call in the same
// branch and to descendants spawned after the update, because they read
// through to the same scope record rather than a snapshot.
//
// Called outside any active scope, or with a nil logger, this is a
// non-fatal misuse: it is reported and otherwise ignored. Logging must
// never be the cause of a caller's failure.
func UpdateLogger(ctx context.Context, newLogger *logger.Logger) {
	sc, ok := ctx.Value(scopeKey{}).(*scope)
	if !ok {
		log.Println("WARN: logctx: UpdateLogger called outside an active scope, ignoring")
		return
	}
	if newLogger == nil {
		log.Println("WARN: logctx: UpdateLogger called with nil logger, ignoring")
		return
	}
	sc.logger.Store(newLogger)
}
