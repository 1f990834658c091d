// Package trace records what the target registry does during start-up.
//
// Registration of target families is a short, run-once phase, so tracing is
// event based rather than sampled: every initializer is wrapped in a span and
// every registered target produces a point event.
//
// # Usage
//
//	targetinfo targets --trace=- --trace-level=detail
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: reserved for failures
//   - LevelPhase: driver and initializer boundaries
//   - LevelDetail: per-target registration events
//   - LevelDebug: everything
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "targetinfo.init", 0)
//	defer span.End("")
package trace
