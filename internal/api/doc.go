// Package api provides the read-only REST API over the scraped standings.
//
// The server loads the results CSV into an immutable in-memory dataset at
// startup and serves filtered, paginated views of schools, conferences and
// yearly standings. It never writes: refreshing the data means re-running
// the scraper and restarting the server.
package api
