// Package report renders the plain text analysis report: the banner, the
// shuffled deck or the echoed hand file, the hands, the undealt cards and the
// winning hand order.
package report
