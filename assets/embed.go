// Package assets holds the default corpora compiled into the binary.
package assets

import "embed"

// Files contains "solutions" (one complete placement per line) and
// "starting" (dealt openings, easiest tier first).
//
//go:embed solutions starting
var Files embed.FS
