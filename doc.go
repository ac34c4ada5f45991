// Package rediskv is a thin, uniformly-erroring facade over a Redis-shaped
// key-value store. It normalizes scalars, lists, hashes, expirations and
// key enumeration into one Client interface where every failure is a typed
// *Error carrying an HTTP-style status code: 404 for absence, 500 for
// transport or codec failures.
//
// Components:
//   - store.Store: the backing client (redis for production, memory for
//     dev/tests). Absence is reported via ok/count returns, never errors.
//   - codec.Codec[any]: value (de)serialization; JSON by default. Reads
//     take a parse flag - pass false to receive the raw encoded text.
//   - Logger: optional diagnostics, emitted only in development mode.
//
// The facade holds no state of its own beyond the store handle: every call
// round-trips to the store, and a key whose last list element or hash field
// was removed is indistinguishable from one that never existed.
//
// Composite operations (GetByPrefix, GetAll, DeleteAll) fan out over key
// enumeration plus one primitive call per key. Fan-out is concurrent where
// noted, results are paired to keys by position, and the first failing
// member fails the whole call with its original classification.
package rediskv
