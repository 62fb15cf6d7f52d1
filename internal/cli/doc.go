// Package cli implements the command-line interface for naia-standings.
//
// The cli package provides the Cobra-based CLI with subcommands for scraping
// a standings release into the results CSV, managing the processed-URL
// ledger, writing the sorted export, migrating the CSV column layout, and
// discovering release URLs. It coordinates the scraper, standings, roster
// and store packages; output is text or JSON.
package cli
