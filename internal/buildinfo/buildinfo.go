// Package buildinfo exposes build metadata stamped in via -ldflags.
package buildinfo

import (
	"fmt"
	"io"
)

// Set at build time, e.g.:
//
//	go build -ldflags "-X wallmagic/internal/buildinfo.Version=1.0.0"
var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the build metadata to w, one line per field.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
