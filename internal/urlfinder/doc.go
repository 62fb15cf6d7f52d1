// Package urlfinder discovers NAIA standings release URLs.
//
// Release URLs are not published in a stable index, so the finder probes the
// handful of URL shapes the NAIA has used per season and checks whether each
// candidate page actually carries standings data. It can also walk the links
// on a season landing page and collect the ones that look like standings.
package urlfinder
