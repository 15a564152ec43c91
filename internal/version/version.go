// Package version holds the release string shared by all binaries.
package version

// Version can be overridden at build time with
// -ldflags "-X isgmotif/internal/version.Version=...".
var Version = "0.3.0"
