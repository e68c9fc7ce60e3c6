// Package timer provides a cooperative deadline signal shared by the search
// drivers in package search and the worker pool in package parallel.
//
// A Timer is armed once via Start and polled lock-free via Finished; it never
// blocks a caller and never panics. Closing a Timer cancels its background
// countdown goroutine, mirroring the "released on drop" lifecycle described
// for the Rust original: no handle is ever leaked past Close.
//
// Unlike the upstream Rust Timer (a Mutex+Condvar pair woken by a countdown
// thread), this port arms the deadline with context.WithTimeout and polls
// ctx.Err(). The visible contract — Finished() is false until started, false
// for at least the requested duration, true no later than a small scheduling
// slop after it — is identical; only the primitive changed, to the one this
// pack already reaches for when a goroutine needs a cancellable countdown
// (core/dfs's WithCancelContext, for instance).
package timer
