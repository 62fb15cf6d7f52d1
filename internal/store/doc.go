// Package store provides CSV-backed persistence for the school roster and
// JSON-backed persistence for the processed-URL ledger.
//
// The main results CSV is the sole source of truth for school records. It is
// read fully into memory, mutated, and rewritten wholesale; there is no
// incremental persistence. The store also writes the normalized sorted
// export consumed by the read API and migrates the legacy single-sport
// column layout to the multi-sport one.
package store
