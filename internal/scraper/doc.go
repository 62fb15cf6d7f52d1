// Package scraper provides HTTP fetching and HTML section extraction for
// NAIA conference standings release pages.
//
// The scraper fetches a release page from naia.org and locates conference
// headings (bold text containing "Conference", reassembling headings the
// site splits across adjacent bold fragments), captures the standings block
// that follows each heading, and hands the block text to the standings
// package for format detection and parsing.
package scraper
