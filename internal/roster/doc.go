// Package roster provides the in-memory school roster and the matching and
// upsert logic used when ingesting newly scraped standings.
//
// A roster is an ordered list of school records loaded from the results CSV.
// Record order is significant: the name matcher resolves scraped school names
// against the roster in file order, and new schools are appended at the end.
package roster
