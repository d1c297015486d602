// Package barrier implements a reusable (cyclic) rendezvous point for a fixed
// number of parties.
//
// Semantics
//
//   - Await blocks until all parties have called it, then releases them
//     together. The barrier then starts a new generation and can be reused.
//   - An optional action runs in the last arriving party, before anyone is
//     released. If it returns an error (or panics) the generation is broken.
//   - A generation breaks when a party times out (AwaitTimeout), when a
//     party's context is done (Await), when Break is called, or when the
//     action fails. Every waiter of a broken generation returns ErrBroken;
//     the party that caused it returns its own cause (ErrTimeout, ctx.Err()).
//   - A broken barrier stays broken, and further Await calls fail fast with
//     ErrBroken, until Reset.
//   - Reset starts a fresh generation. It fails with ErrResetWhileWaiting if
//     any party is currently waiting.
//
// Errors:
//
//	ErrInvalidParties     - parties < 1.
//	ErrBroken             - the generation was broken.
//	ErrTimeout            - AwaitTimeout elapsed before all parties arrived.
//	ErrResetWhileWaiting  - Reset called while parties are waiting.
package barrier
